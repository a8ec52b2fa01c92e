// Package scansion runs the full pipeline over a line of text: segmentation,
// syllable assembly, weight classification and grouping into words.
package scansion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/f3rmion/shiksha/internal/akshara"
	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/lexer"
	"github.com/f3rmion/shiksha/internal/varna"
)

// Analyzer scans lines against one phoneme table. It holds no mutable state
// and may be shared between goroutines.
type Analyzer struct {
	lexer      *lexer.Lexer
	classifier chandas.Classifier
	assembly   []akshara.Option
	logger     *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithPolicy sets how prolonged vowels are weighed.
func WithPolicy(p chandas.Policy) Option {
	return func(a *Analyzer) { a.classifier.Policy = p }
}

// WithAccentMarkers reads the given characters as pitch marks on the
// preceding syllable instead of text, e.g. akshara.BarahaAccents().
func WithAccentMarkers(markers map[rune]varna.Pitch) Option {
	return func(a *Analyzer) {
		a.assembly = append(a.assembly, akshara.WithAccentMarkers(markers))
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an Analyzer over table.
func New(table *varna.Table, opts ...Option) *Analyzer {
	a := &Analyzer{
		lexer:  lexer.New(table),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Table returns the phoneme table in use.
func (a *Analyzer) Table() *varna.Table {
	return a.lexer.Table()
}

// Policy returns the prolonged-vowel policy in use.
func (a *Analyzer) Policy() chandas.Policy {
	if a.classifier.Policy == "" {
		return chandas.ProlongedExtended
	}
	return a.classifier.Policy
}

// Result is the scansion of one line.
type Result struct {
	Text      string            // input after NFC normalisation
	Tokens    []lexer.Token     // segmenter output
	Items     []akshara.Item    // syllables and passed-through characters
	Scanned   []chandas.Scanned // syllables with a vowel, weighed
	Unmatched []rune            // characters the table does not know, excluding word breaks
	Line      *chandas.Group    // vaakya of pada groups
	Words     akshara.Vaakya    // the same words as plain syllables
}

// Weights returns the weight of every scanned syllable.
func (r *Result) Weights() []chandas.Weight {
	out := make([]chandas.Weight, len(r.Scanned))
	for i, s := range r.Scanned {
		out[i] = s.Weight
	}
	return out
}

// Pattern returns the line as L/G/P symbols.
func (r *Result) Pattern() string {
	return chandas.Pattern(r.Weights())
}

// Total returns the number of kaala in the line.
func (r *Result) Total() int {
	return r.Line.Total()
}

// Feet returns the gana names of the line.
func (r *Result) Feet() []string {
	return chandas.FootNames(r.Weights())
}

// PadaPatterns returns the pattern of each word.
func (r *Result) PadaPatterns() []string {
	var out []string
	for _, c := range r.Line.Children() {
		if g, ok := c.(*chandas.Group); ok {
			out = append(out, g.Pattern())
		}
	}
	return out
}

// Segment returns the tokens of text after NFC normalisation.
func (a *Analyzer) Segment(text string) []lexer.Token {
	return a.lexer.Segment(norm.NFC.String(text))
}

// Analyze scans one line.
func (a *Analyzer) Analyze(text string) (*Result, error) {
	text = norm.NFC.String(text)

	tokens := a.lexer.Segment(text)
	items, err := akshara.Assemble(akshara.Slice(tokens), a.assembly...)
	if err != nil {
		return nil, fmt.Errorf("assembling %q: %w", text, err)
	}

	scanned, err := a.classifier.ScanSyllables(akshara.Syllables(items))
	if err != nil {
		return nil, fmt.Errorf("scanning %q: %w", text, err)
	}

	r := &Result{
		Text:    text,
		Tokens:  tokens,
		Items:   items,
		Scanned: scanned,
		Line:    group(items, scanned),
		Words:   akshara.Words(items),
	}
	for _, it := range items {
		if !it.IsSyllable() && !akshara.IsWordBreak(it.Unmatched) && !unicode.IsSpace(it.Unmatched) {
			r.Unmatched = append(r.Unmatched, it.Unmatched)
		}
	}

	a.logger.Debug("analyzed line",
		"text", text,
		"tokens", len(tokens),
		"syllables", len(scanned),
		"pattern", r.Pattern(),
		"kaala", r.Total(),
	)
	if len(r.Unmatched) > 0 {
		a.logger.Debug("unmatched characters", "text", text, "chars", string(r.Unmatched))
	}
	return r, nil
}

// group splits scanned syllables into pada groups at word breaks. scanned
// must hold one entry per voweled syllable of items, in order.
func group(items []akshara.Item, scanned []chandas.Scanned) *chandas.Group {
	line := chandas.NewGroup(chandas.KindVaakya)
	pada := chandas.NewGroup(chandas.KindPada)
	j := 0
	for _, it := range items {
		switch {
		case it.IsSyllable():
			if _, ok := it.Syllable.Nucleus(); ok {
				pada.Append(scanned[j])
				j++
			}
		case akshara.IsWordBreak(it.Unmatched):
			if pada.Len() > 0 {
				line.Append(pada)
				pada = chandas.NewGroup(chandas.KindPada)
			}
		}
	}
	if pada.Len() > 0 {
		line.Append(pada)
	}
	return line
}

// AnalyzeAll scans independent lines concurrently. Results are returned in
// input order. The first failure cancels the remaining work.
func (a *Analyzer) AnalyzeAll(ctx context.Context, lines []string) ([]*Result, error) {
	results := make([]*Result, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := a.Analyze(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug("analyzed lines", "count", len(lines))
	return results, nil
}

// SplitLines splits text into non-blank lines, trimming surrounding space.
func SplitLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
