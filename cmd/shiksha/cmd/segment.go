package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/render"
)

var segmentCmd = &cobra.Command{
	Use:   "segment <text>",
	Short: "Split text into phonetic units",
	Long: `Split text into phonetic units by greedy longest match against the
phoneme table. Characters the table does not know are passed through.

Examples:
  shiksha segment kha          # kh|a
  shiksha segment -f table agni`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
	addFormatFlag(segmentCmd, render.FormatPlain)
}

func runSegment(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	p, err := e.printer(cmd)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	return p.Tokens(e.analyzer.Segment(text))
}
