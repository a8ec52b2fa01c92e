package scansion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/shiksha/internal/akshara"
	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/config"
	"github.com/f3rmion/shiksha/internal/testutil"
	"github.com/f3rmion/shiksha/internal/varna"
)

func newAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	opts = append([]Option{WithLogger(testutil.NewTestLogger(t))}, opts...)
	return New(config.DefaultTable(), opts...)
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
		total   int
		padas   []string
	}{
		{"single syllable", "kha", "L", 1, []string{"L"}},
		{"opening verse", "agnimIDe purohitaM", "GLGGLGLG", 13, []string{"GLGG", "LGLG"}},
		{"pluta", "deva3", "GP", 5, []string{"GP"}},
		{"word-final consonant closes across space", "vak tapa", "GLL", 4, []string{"G", "LL"}},
		{"danda breaks words", "rAma | sItA", "GLGG", 7, []string{"GL", "GG"}},
		{"empty", "", "", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := newAnalyzer(t).Analyze(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, r.Pattern())
			assert.Equal(t, tt.total, r.Total())
			assert.Equal(t, tt.padas, r.PadaPatterns())
			assert.Equal(t, chandas.KindVaakya, r.Line.Kind)
		})
	}
}

func TestAnalyzePolicy(t *testing.T) {
	r, err := newAnalyzer(t, WithPolicy(chandas.ProlongedHeavy)).Analyze("deva3")
	require.NoError(t, err)
	assert.Equal(t, "GG", r.Pattern())
	assert.Equal(t, 4, r.Total())
}

func TestAnalyzeUnmatched(t *testing.T) {
	r, err := newAnalyzer(t).Analyze("ka,  xa!")
	require.NoError(t, err)
	assert.Equal(t, []rune{',', 'x', '!'}, r.Unmatched)
	assert.Equal(t, "LL", r.Pattern())
}

func TestAnalyzeNormalizes(t *testing.T) {
	// e + combining acute composes to U+00E9, which the table does not know
	r, err := newAnalyzer(t).Analyze("ka e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "ka \u00e9", r.Text)
	assert.Equal(t, []rune{'\u00e9'}, r.Unmatched)
	assert.Equal(t, "L", r.Pattern())
}

func TestSegment(t *testing.T) {
	tokens := newAnalyzer(t).Segment("kha e\u0301")
	require.Len(t, tokens, 4)
	assert.Equal(t, "kh", tokens[0].String())
	assert.False(t, tokens[3].IsUnit())
	assert.Equal(t, '\u00e9', tokens[3].Rune())
}

func TestAnalyzeTrailingConsonant(t *testing.T) {
	table := varna.MustTable(
		varna.Unit{Key: "a", Class: varna.ClassVowel, Pitch: varna.PitchLow, Duration: varna.DurationShort},
		varna.Unit{Key: "k", Class: varna.ClassStop},
	)
	r, err := New(table).Analyze("kak")
	require.NoError(t, err)
	assert.Equal(t, "L", r.Pattern())
	assert.Len(t, r.Items, 2)
}

func TestAnalyzeFeetAndWords(t *testing.T) {
	r, err := newAnalyzer(t).Analyze("rAmo rAjamaNiH")
	require.NoError(t, err)
	assert.Equal(t, "GGGLLG", r.Pattern())
	assert.Equal(t, []string{"ma", "sa"}, r.Feet())
	require.Len(t, r.Words.Padas, 2)
	assert.Equal(t, "rA mo", r.Words.Padas[0].Transliterate(varna.SchemeHarvardKyoto))
}

func TestAnalyzeAll(t *testing.T) {
	lines := []string{"kha", "kA", "agni", "ka3", "kaM", "vakt"}
	results, err := newAnalyzer(t).AnalyzeAll(context.Background(), lines)
	require.NoError(t, err)
	require.Len(t, results, len(lines))

	var patterns []string
	for i, r := range results {
		assert.Equal(t, lines[i], r.Text)
		patterns = append(patterns, r.Pattern())
	}
	assert.Equal(t, []string{"L", "G", "GL", "P", "G", "G"}, patterns)
}

func TestAnalyzeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newAnalyzer(t).AnalyzeAll(ctx, []string{"ka", "kA"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeAllEmpty(t *testing.T) {
	results, err := newAnalyzer(t).AnalyzeAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecord(t *testing.T) {
	r, err := newAnalyzer(t).Analyze("agnimIDe")
	require.NoError(t, err)

	rec := r.Record(chandas.ProlongedExtended)
	assert.Equal(t, "GLGG", rec.Pattern)
	assert.Equal(t, 7, rec.Total)
	assert.Equal(t, "extended", rec.Policy)

	g, err := rec.Group()
	require.NoError(t, err)
	assert.Equal(t, r.Total(), g.Total())
	assert.Equal(t, r.Pattern(), g.Pattern())
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"ka", "kha ga"}, SplitLines("  ka\n\n kha ga \n"))
	assert.Empty(t, SplitLines("\n \n"))
}

func TestWordBreaks(t *testing.T) {
	assert.True(t, akshara.IsWordBreak('|'))
	assert.False(t, akshara.IsWordBreak(','))
}

func TestAnalyzeAccentMarkers(t *testing.T) {
	table := varna.MustTable(
		varna.Unit{Key: "a", Class: varna.ClassVowel, Pitch: varna.PitchHigh, Duration: varna.DurationShort},
		varna.Unit{Key: "k", Class: varna.ClassStop},
		varna.Unit{Key: "q", Class: varna.ClassYama},
	)

	r, err := New(table).Analyze("kaqka")
	require.NoError(t, err)
	assert.Equal(t, "GL", r.Pattern(), "q as a table unit closes the first syllable")

	r, err = New(table, WithAccentMarkers(akshara.BarahaAccents())).Analyze("kaqka")
	require.NoError(t, err)
	assert.Equal(t, "LL", r.Pattern())
	assert.Empty(t, r.Unmatched)
	require.Len(t, r.Scanned, 2)
	assert.Equal(t, varna.PitchLow, r.Scanned[0].Syllable.Pitch())
	assert.Equal(t, varna.PitchHigh, r.Scanned[1].Syllable.Pitch())

	g, err := r.Record(chandas.ProlongedExtended).Group()
	require.NoError(t, err)
	pada, ok := g.Children()[0].(*chandas.Group)
	require.True(t, ok)
	first, ok := pada.Children()[0].(chandas.Scanned)
	require.True(t, ok)
	assert.Equal(t, varna.PitchLow, first.Syllable.Pitch(), "accent survives serialisation")
}

func TestAnalyzeAccentMarkersDefaultTable(t *testing.T) {
	r, err := newAnalyzer(t, WithAccentMarkers(akshara.BarahaAccents())).Analyze("ke#ka")
	require.NoError(t, err)
	assert.Equal(t, "GL", r.Pattern())
	assert.Equal(t, varna.PitchMixed, r.Scanned[0].Syllable.Pitch())
	assert.Empty(t, r.Unmatched)

	r, err = newAnalyzer(t).Analyze("ke#ka")
	require.NoError(t, err)
	assert.Equal(t, []rune{'#'}, r.Unmatched)
}
