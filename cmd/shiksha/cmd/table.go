package cmd

import (
	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/render"
	"github.com/f3rmion/shiksha/internal/varna"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List the phoneme table",
	Long: `List every unit of the phoneme table in use with its class and
phonetic attributes. Use --scheme to show Devanagari or codepoints.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	addFormatFlag(tableCmd, render.FormatTable)
	tableCmd.Flags().String("class", "", "only list units of this class (swara, sparsha, ...)")
}

func runTable(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	p, err := e.printer(cmd)
	if err != nil {
		return err
	}

	table := e.analyzer.Table()
	if name, _ := cmd.Flags().GetString("class"); name != "" {
		class, err := varna.ParseClass(name)
		if err != nil {
			return err
		}
		if table, err = varna.NewTable(table.ByClass(class)...); err != nil {
			return err
		}
	}
	return p.Table(table)
}
