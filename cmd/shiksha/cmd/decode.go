package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/codec"
	"github.com/f3rmion/shiksha/internal/render"
	"github.com/f3rmion/shiksha/internal/scansion"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file.json>",
	Short: "Validate and re-measure a saved scan",
	Long: `Read a scan record written by 'shiksha scan --format json' (one record
or an array), check every unit, syllable and weight, and recompute the
totals. Unknown attribute names are rejected. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	addFormatFlag(decodeCmd, render.FormatPlain)
}

func runDecode(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	p, err := e.printer(cmd)
	if err != nil {
		return err
	}

	r := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening record: %w", err)
		}
		defer f.Close()
		r = f
	}

	recs, err := readRecords(r)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		g, err := rec.Group()
		if err != nil {
			return fmt.Errorf("record %q: %w", rec.Text, err)
		}
		if drift := checkRecord(rec, g); drift != "" {
			e.logger.Warn("stored values differ from recomputed", "text", rec.Text, "detail", drift)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", rec.Text, drift)
		}
		if err := p.Group(g); err != nil {
			return err
		}
	}
	return nil
}

// readRecords accepts a single record or an array of them.
func readRecords(r io.Reader) ([]scansion.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var recs []scansion.Record
		if err := codec.Read(bytes.NewReader(data), &recs); err != nil {
			return nil, err
		}
		return recs, nil
	}
	var rec scansion.Record
	if err := codec.Read(bytes.NewReader(data), &rec); err != nil {
		return nil, err
	}
	return []scansion.Record{rec}, nil
}

// checkRecord compares a record's stored summary with its decoded group.
func checkRecord(rec scansion.Record, g *chandas.Group) string {
	switch {
	case rec.Total != g.Total():
		return fmt.Sprintf("stored total %d, recomputed %d", rec.Total, g.Total())
	case rec.Pattern != g.Pattern():
		return fmt.Sprintf("stored pattern %s, recomputed %s", rec.Pattern, g.Pattern())
	}
	return ""
}
