package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/shiksha/internal/akshara"
	"github.com/f3rmion/shiksha/internal/scansion"
	"github.com/f3rmion/shiksha/internal/varna"
)

// Cell is one column of an aligned scansion: a syllable and its mark.
type Cell struct {
	Text   string
	Mark   string
	Weight string
}

// Cells lays a result out as columns, one per voweled syllable. Vowel-less
// syllables are appended to the column before them; a nil entry marks a word
// break.
func Cells(r *scansion.Result, scheme varna.Scheme) []*Cell {
	var (
		out  []*Cell
		last *Cell
		j    int
	)
	for _, it := range r.Items {
		switch {
		case it.IsSyllable():
			text := it.Syllable.Transliterate(scheme)
			if _, ok := it.Syllable.Nucleus(); !ok {
				if last != nil {
					last.Text += text
					continue
				}
				last = &Cell{Text: text}
				out = append(out, last)
				continue
			}
			w := r.Scanned[j].Weight
			j++
			last = &Cell{Text: text, Mark: w.Symbol(), Weight: string(w)}
			out = append(out, last)
		case akshara.IsWordBreak(it.Unmatched):
			if len(out) > 0 && out[len(out)-1] != nil {
				out = append(out, nil)
			}
			last = nil
		}
	}
	if len(out) > 0 && out[len(out)-1] == nil {
		out = out[:len(out)-1]
	}
	return out
}

// Aligned returns two lines: syllables on top and their marks beneath, each
// column padded to the display width of its wider row. Words are separated
// by a wider gap.
func Aligned(r *scansion.Result, scheme varna.Scheme) (top, bottom string) {
	var t, b strings.Builder
	for i, c := range Cells(r, scheme) {
		if c == nil {
			t.WriteString("  ")
			b.WriteString("  ")
			continue
		}
		if i > 0 {
			t.WriteByte(' ')
			b.WriteByte(' ')
		}
		w := max(runewidth.StringWidth(c.Text), runewidth.StringWidth(c.Mark))
		t.WriteString(runewidth.FillRight(c.Text, w))
		b.WriteString(runewidth.FillRight(c.Mark, w))
	}
	return strings.TrimRight(t.String(), " "), strings.TrimRight(b.String(), " ")
}
