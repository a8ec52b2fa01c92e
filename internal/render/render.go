// Package render prints tokens, scansions, phoneme tables and scan history
// as tables, JSON or plain text.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/codec"
	"github.com/f3rmion/shiksha/internal/lexer"
	"github.com/f3rmion/shiksha/internal/scansion"
	"github.com/f3rmion/shiksha/internal/store"
	"github.com/f3rmion/shiksha/internal/varna"
)

// Format selects the output layout.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ParseFormat parses a format name; the empty string selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatPlain:
		return f, nil
	}
	return "", &varna.UnknownVariantError{Attribute: "format", Value: s}
}

// Printer writes values to w in one format and transliteration scheme.
type Printer struct {
	w      io.Writer
	format Format
	scheme varna.Scheme
	policy chandas.Policy
}

// NewPrinter returns a Printer. policy is recorded in JSON scan output.
func NewPrinter(w io.Writer, format Format, scheme varna.Scheme, policy chandas.Policy) *Printer {
	if format == "" {
		format = FormatTable
	}
	if scheme == "" {
		scheme = varna.SchemeHarvardKyoto
	}
	return &Printer{w: w, format: format, scheme: scheme, policy: policy}
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	return t
}

type tokenJSON struct {
	Unit      *codec.UnitRecord `json:"unit,omitempty"`
	Unmatched string            `json:"unmatched,omitempty"`
}

// Tokens prints a segmenter result.
func (p *Printer) Tokens(tokens []lexer.Token) error {
	switch p.format {
	case FormatJSON:
		out := make([]tokenJSON, len(tokens))
		for i, tok := range tokens {
			if tok.IsUnit() {
				rec := codec.EncodeUnit(tok.Unit())
				out[i].Unit = &rec
			} else {
				out[i].Unmatched = string(tok.Rune())
			}
		}
		return codec.Write(p.w, out)
	case FormatPlain:
		parts := make([]string, len(tokens))
		for i, tok := range tokens {
			parts[i] = p.token(tok)
		}
		_, err := fmt.Fprintln(p.w, strings.Join(parts, "|"))
		return err
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"#", "Token", "Class", "Pitch", "Duration", "Place", "Effort"})
	for i, tok := range tokens {
		if !tok.IsUnit() {
			t.AppendRow(table.Row{i + 1, string(tok.Rune()), "(unmatched)"})
			continue
		}
		u := tok.Unit()
		t.AppendRow(table.Row{i + 1, u.Render(p.scheme), u.Class, u.Pitch, u.Duration, u.Place, u.Effort})
	}
	t.Render()
	return nil
}

func (p *Printer) token(tok lexer.Token) string {
	if tok.IsUnit() {
		return tok.Unit().Render(p.scheme)
	}
	return string(tok.Rune())
}

// Result prints one scansion.
func (p *Printer) Result(r *scansion.Result) error {
	return p.Results([]*scansion.Result{r})
}

// Results prints several scansions. JSON output is always an array.
func (p *Printer) Results(results []*scansion.Result) error {
	switch p.format {
	case FormatJSON:
		recs := make([]scansion.Record, len(results))
		for i, r := range results {
			recs[i] = r.Record(p.policy)
		}
		return codec.Write(p.w, recs)
	case FormatPlain:
		for _, r := range results {
			if err := p.plainResult(r); err != nil {
				return err
			}
		}
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.tableResult(r)
	}
	return nil
}

func (p *Printer) plainResult(r *scansion.Result) error {
	top, bottom := Aligned(r, p.scheme)
	_, err := fmt.Fprintf(p.w, "%s\n%s\n%s\n", top, bottom, p.summary(r))
	return err
}

func (p *Printer) summary(r *scansion.Result) string {
	s := fmt.Sprintf("pattern %s  kaala %d", r.Pattern(), r.Total())
	if feet := r.Feet(); len(feet) > 0 {
		s += "  gana " + strings.Join(feet, " ")
	}
	if len(r.Unmatched) > 0 {
		s += fmt.Sprintf("  unmatched %q", string(r.Unmatched))
	}
	return s
}

func (p *Printer) tableResult(r *scansion.Result) {
	t := p.newTable()
	t.SetTitle(r.Text)
	t.AppendHeader(table.Row{"Pada", "Syllable", "Units", "Weight", "Kaala"})

	for i, child := range r.Line.Children() {
		pada, ok := child.(*chandas.Group)
		if !ok {
			continue
		}
		for _, c := range pada.Children() {
			s, ok := c.(chandas.Scanned)
			if !ok {
				continue
			}
			units := s.Syllable.Units()
			keys := make([]string, len(units))
			for k, u := range units {
				keys[k] = u.Render(p.scheme)
			}
			t.AppendRow(table.Row{i + 1, s.Syllable.Transliterate(p.scheme), strings.Join(keys, " "), s.Weight, s.Kaala()})
		}
		if i < r.Line.Len()-1 {
			t.AppendSeparator()
		}
	}
	t.AppendFooter(table.Row{"", r.Pattern(), "", "total", r.Total()})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()
	fmt.Fprintln(p.w, p.summary(r))
}

// Table prints every unit of a phoneme table.
func (p *Printer) Table(tbl *varna.Table) error {
	units := tbl.Units()
	switch p.format {
	case FormatJSON:
		recs := make([]codec.UnitRecord, len(units))
		for i, u := range units {
			recs[i] = codec.EncodeUnit(u)
		}
		return codec.Write(p.w, recs)
	case FormatPlain:
		for _, u := range units {
			if _, err := fmt.Fprintf(p.w, "%s\t%s\n", u.Key, u.Render(p.scheme)); err != nil {
				return err
			}
		}
		return nil
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"Key", "Form", "Class", "Pitch", "Duration", "Place", "Effort"})
	for _, u := range units {
		t.AppendRow(table.Row{u.Key, u.Render(p.scheme), u.Class, u.Pitch, u.Duration, u.Place, u.Effort})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "units", len(units)})
	t.Render()
	return nil
}

type historyJSON struct {
	ID        string          `json:"id"`
	CreatedAt string          `json:"created_at"`
	Record    scansion.Record `json:"record"`
}

// History prints stored scans.
func (p *Printer) History(scans []*store.Scan) error {
	switch p.format {
	case FormatJSON:
		out := make([]historyJSON, len(scans))
		for i, s := range scans {
			out[i] = historyJSON{ID: s.ID, CreatedAt: s.CreatedAt.Format(time.RFC3339), Record: s.Record}
		}
		return codec.Write(p.w, out)
	case FormatPlain:
		for _, s := range scans {
			if _, err := fmt.Fprintf(p.w, "%s\t%s\t%s\n", s.ID, s.Record.Pattern, s.Record.Text); err != nil {
				return err
			}
		}
		return nil
	}

	if len(scans) == 0 {
		_, err := fmt.Fprintln(p.w, "(no scans)")
		return err
	}
	t := p.newTable()
	t.AppendHeader(table.Row{"ID", "Saved", "Text", "Pattern", "Kaala"})
	for _, s := range scans {
		t.AppendRow(table.Row{shortID(s.ID), s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Record.Text, s.Record.Pattern, s.Record.Total})
	}
	t.Render()
	_, err := fmt.Fprintf(p.w, "(%d scans)\n", len(scans))
	return err
}

// Group prints a decoded group: its pattern, total and the nested structure.
func (p *Printer) Group(g *chandas.Group) error {
	if p.format == FormatJSON {
		return codec.Write(p.w, codec.EncodeGroup(g))
	}
	var b strings.Builder
	writeGroup(&b, g, 0)
	fmt.Fprintf(&b, "pattern %s  kaala %d\n", g.Pattern(), g.Total())
	_, err := io.WriteString(p.w, b.String())
	return err
}

func writeGroup(b *strings.Builder, g *chandas.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s %s (%d)\n", indent, g.Kind, g.Pattern(), g.Total())
	for _, c := range g.Children() {
		switch v := c.(type) {
		case *chandas.Group:
			writeGroup(b, v, depth+1)
		case chandas.Scanned:
			fmt.Fprintf(b, "%s  %s %s\n", indent, v.Syllable, v.Weight.Symbol())
		case chandas.Weight:
			fmt.Fprintf(b, "%s  %s\n", indent, v.Symbol())
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
