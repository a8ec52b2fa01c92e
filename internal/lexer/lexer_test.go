package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/shiksha/internal/varna"
)

func testTable(t *testing.T) *varna.Table {
	t.Helper()
	table, err := varna.NewTable(
		varna.Unit{Key: "k", Class: varna.ClassStop, Place: varna.PlaceThroat, Effort: varna.EffortFullContact},
		varna.Unit{Key: "h", Class: varna.ClassSibilant, Place: varna.PlaceThroat},
		varna.Unit{Key: "kh", Class: varna.ClassStop, Place: varna.PlaceThroat, Effort: varna.EffortStrongAspiration},
		varna.Unit{Key: "a", Class: varna.ClassVowel, Pitch: varna.PitchLow, Duration: varna.DurationShort},
		varna.Unit{Key: "aa", Class: varna.ClassVowel, Pitch: varna.PitchLow, Duration: varna.DurationLong},
		varna.Unit{Key: "l", Class: varna.ClassSemivowel},
		varna.Unit{Key: "lR", Class: varna.ClassVowel, Pitch: varna.PitchLow, Duration: varna.DurationShort},
		varna.Unit{Key: "lRR", Class: varna.ClassVowel, Pitch: varna.PitchLow, Duration: varna.DurationLong},
	)
	require.NoError(t, err)
	return table
}

func TestSegment(t *testing.T) {
	lx := New(testTable(t))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"longest match wins", "kha", "kh|a"},
		{"single consonant", "ka", "k|a"},
		{"long vowel", "kaa", "k|aa"},
		{"three character key", "lRRk", "lRR|k"},
		{"two character key at end", "klR", "k|lR"},
		{"no backtracking", "aaa", "aa|a"},
		{"unknown passthrough", "k?a", "k|?|a"},
		{"space is unmatched", "ka kha", "k|a| |kh|a"},
		{"unicode unmatched", "kअa", "k|अ|a"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(lx.Segment(tt.input), "|"))
		})
	}
}

func TestSegmentTokenKinds(t *testing.T) {
	tokens := New(testTable(t)).Segment("kh?a")
	require.Len(t, tokens, 3)

	assert.True(t, tokens[0].IsUnit())
	assert.Equal(t, varna.EffortStrongAspiration, tokens[0].Unit().Effort)

	assert.False(t, tokens[1].IsUnit())
	assert.Equal(t, '?', tokens[1].Rune())

	assert.True(t, tokens[2].IsUnit())
	assert.True(t, tokens[2].Unit().IsVowel())
}

func TestTokensRestartable(t *testing.T) {
	lx := New(testTable(t))
	seq := lx.Tokens("khaa lRk")

	var first, second []Token
	for tok := range seq {
		first = append(first, tok)
	}
	for tok := range seq {
		second = append(second, tok)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, first, lx.Segment("khaa lRk"))
}

func TestTokensEarlyStop(t *testing.T) {
	lx := New(testTable(t))
	n := 0
	for range lx.Tokens("kakakaka") {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
