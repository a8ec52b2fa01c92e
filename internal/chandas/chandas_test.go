package chandas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/shiksha/internal/akshara"
	"github.com/f3rmion/shiksha/internal/lexer"
	"github.com/f3rmion/shiksha/internal/varna"
)

func testTable(t *testing.T) *varna.Table {
	t.Helper()
	v := func(key string, d varna.Duration) varna.Unit {
		return varna.Unit{Key: key, Class: varna.ClassVowel, Pitch: varna.PitchLow, Duration: d}
	}
	c := func(key string, class varna.Class) varna.Unit {
		return varna.Unit{Key: key, Class: class}
	}
	table, err := varna.NewTable(
		v("a", varna.DurationShort), v("A", varna.DurationLong), v("a3", varna.DurationProlonged),
		v("i", varna.DurationShort), v("I", varna.DurationLong),
		c("k", varna.ClassStop), c("h", varna.ClassSibilant), c("kh", varna.ClassStop),
		c("g", varna.ClassStop), c("n", varna.ClassStop), c("r", varna.ClassSemivowel),
		c("t", varna.ClassStop), c("v", varna.ClassSemivowel), c("s", varna.ClassSibilant),
		c("m", varna.ClassStop), c("y", varna.ClassSemivowel),
		c("M", varna.ClassAnusvara), c("H", varna.ClassVisarga),
	)
	require.NoError(t, err)
	return table
}

func syllables(t *testing.T, text string) []akshara.Syllable {
	t.Helper()
	items, err := akshara.Assemble(lexer.New(testTable(t)).Tokens(text))
	require.NoError(t, err)
	return akshara.Syllables(items)
}

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		policy  Policy
		pattern string
	}{
		{"short open syllable", "kha", "", "L"},
		{"long vowel", "kA", "", "G"},
		{"prolonged extended", "ka3", "", "P"},
		{"prolonged folded", "ka3", ProlongedHeavy, "G"},
		{"cluster closes", "agni", "", "GL"},
		{"single consonant does not close", "kavi", "", "LL"},
		{"anusvara closes", "kaM", "", "G"},
		{"visarga closes", "kaHka", "", "GL"},
		{"final consonant alone", "vak", "", "L"},
		{"final cluster", "vakt", "", "G"},
		{"genitive", "rAmasya", "", "GGL"},
		{"consonant across word break", "vak tA", "", "GG"},
		{"single consonant across word break", "vak A", "", "LG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights, err := Classifier{Policy: tt.policy}.Scan(syllables(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, Pattern(weights))
		})
	}
}

func TestClassifyEndToEnd(t *testing.T) {
	tokens := lexer.New(testTable(t)).Segment("kha")
	require.Len(t, tokens, 2)
	assert.Equal(t, "kh", tokens[0].String())
	assert.Equal(t, "a", tokens[1].String())

	items, err := akshara.Assemble(akshara.Slice(tokens))
	require.NoError(t, err)
	require.Len(t, items, 1)

	w, err := Classifier{}.Classify(items[0].Syllable, akshara.Syllable{})
	require.NoError(t, err)
	assert.Equal(t, Light, w)
}

func TestClassifyNoNucleus(t *testing.T) {
	s, err := akshara.New(varna.Unit{Key: "k", Class: varna.ClassStop})
	require.NoError(t, err)

	_, err = Classifier{}.Classify(s, akshara.Syllable{})
	assert.ErrorIs(t, err, ErrNoNucleus)
}

func TestClassifyDeterministic(t *testing.T) {
	syls := syllables(t, "agnimIDe")
	c := Classifier{}
	first, err := c.Scan(syls)
	require.NoError(t, err)
	second, err := c.Scan(syls)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScanSyllables(t *testing.T) {
	scanned, err := Classifier{}.ScanSyllables(syllables(t, "vakt"))
	require.NoError(t, err)
	require.Len(t, scanned, 1)
	assert.Equal(t, "va", scanned[0].Syllable.String())
	assert.Equal(t, Heavy, scanned[0].Weight)
	assert.Equal(t, 2, scanned[0].Kaala())
}

func TestGroupTotal(t *testing.T) {
	g := NewGroup(KindGana, Light, Heavy, Light)
	assert.Equal(t, 4, g.Total())

	g.Append(Extended)
	assert.Equal(t, 7, g.Total())
	assert.Equal(t, "LGLP", g.Pattern())
}

func TestGroupNesting(t *testing.T) {
	s, err := akshara.New(varna.Unit{Key: "a", Class: varna.ClassVowel, Pitch: varna.PitchLow, Duration: varna.DurationShort})
	require.NoError(t, err)

	pada := NewGroup(KindPada, Scanned{Syllable: s, Weight: Heavy}, Light)
	line := NewGroup(KindVaakya, pada, NewGroup(KindPada, Extended))
	assert.Equal(t, 6, line.Total())
	assert.Equal(t, []Weight{Heavy, Light, Extended}, line.Weights())

	pada.Append(Light)
	assert.Equal(t, 7, line.Total(), "totals are recomputed after append")

	var nilGroup *Group
	line.Append(nil, nilGroup)
	assert.Equal(t, 2, line.Len())
}

func TestWeightParsing(t *testing.T) {
	w, err := ParseWeight("Guru")
	require.NoError(t, err)
	assert.Equal(t, Heavy, w)

	_, err = ParseWeight("medium")
	assert.ErrorIs(t, err, varna.ErrUnknownVariant)

	ws, err := ParsePattern("LGP")
	require.NoError(t, err)
	assert.Equal(t, []Weight{Light, Heavy, Extended}, ws)

	_, err = ParsePattern("LX")
	assert.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, ProlongedExtended, p)

	p, err = ParsePolicy("heavy")
	require.NoError(t, err)
	assert.Equal(t, ProlongedHeavy, p)

	_, err = ParsePolicy("both")
	assert.Error(t, err)
}

func TestGanas(t *testing.T) {
	name, ok := GanaName(Light, Heavy, Heavy)
	require.True(t, ok)
	assert.Equal(t, "ya", name)

	name, ok = GanaName(Extended, Light, Light)
	require.True(t, ok)
	assert.Equal(t, "bha", name)

	_, ok = GanaName(Light, Light)
	assert.False(t, ok)

	weights, err := ParsePattern("GGGLLLGL")
	require.NoError(t, err)
	assert.Len(t, Feet(weights), 3)
	assert.Equal(t, []string{"ma", "na", "ga", "la"}, FootNames(weights))
}
