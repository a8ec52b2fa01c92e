package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/render"
	"github.com/f3rmion/shiksha/internal/scansion"
	"github.com/f3rmion/shiksha/internal/store"
)

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Scan lines for metre",
	Long: `Scan one line given as arguments, or every non-blank line of a file.
Each syllable is weighed laghu, guru or pluta and the line's pattern,
kaala total and gana feet are printed.

Examples:
  shiksha scan agnimIDe purohitaM
  shiksha scan --file verses.txt --format json
  cat verses.txt | shiksha scan --file - --save`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addFormatFlag(scanCmd, render.FormatTable)
	scanCmd.Flags().String("file", "", "read lines from a file (- for stdin)")
	scanCmd.Flags().Bool("save", false, "save scans to history")
}

func runScan(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	save, _ := cmd.Flags().GetBool("save")

	lines, err := scanInput(cmd.InOrStdin(), file, args)
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	p, err := e.printer(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	results, err := e.analyzer.AnalyzeAll(ctx, lines)
	if err != nil {
		return err
	}

	if save {
		st, err := e.openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := saveResults(ctx, st, results, e.settings.Policy)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved %d scans to %s\n", n, st.Path())
	}

	return p.Results(results)
}

// scanInput returns the lines to scan: the file's lines if file is set,
// otherwise args joined as a single line.
func scanInput(stdin io.Reader, file string, args []string) ([]string, error) {
	if file == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("nothing to scan: give text or --file")
		}
		return []string{strings.Join(args, " ")}, nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("give text or --file, not both")
	}

	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return scansion.SplitLines(string(data)), nil
}

func saveResults(ctx context.Context, st *store.Store, results []*scansion.Result, policy chandas.Policy) (int, error) {
	for i, r := range results {
		if _, err := st.Save(ctx, r.Record(policy)); err != nil {
			return i, err
		}
	}
	return len(results), nil
}
