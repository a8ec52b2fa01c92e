package akshara

import (
	"strings"

	"github.com/f3rmion/shiksha/internal/varna"
)

// Pada is a word: an ordered list of syllables.
type Pada struct {
	Syllables []Syllable
}

// Transliterate renders the word with its syllables separated by spaces.
func (p Pada) Transliterate(scheme varna.Scheme) string {
	parts := make([]string, len(p.Syllables))
	for i, s := range p.Syllables {
		parts[i] = s.Transliterate(scheme)
	}
	return strings.Join(parts, " ")
}

// Vaakya is a sentence: an ordered list of words.
type Vaakya struct {
	Padas []Pada
}

// Transliterate renders the sentence with words separated by spaces.
func (v Vaakya) Transliterate(scheme varna.Scheme) string {
	parts := make([]string, len(v.Padas))
	for i, p := range v.Padas {
		parts[i] = p.Transliterate(scheme)
	}
	return strings.Join(parts, " ")
}

// Sutra is a bare sequence of syllables with no word structure.
type Sutra struct {
	Syllables []Syllable
}

// Transliterate renders the syllables run together.
func (s Sutra) Transliterate(scheme varna.Scheme) string {
	var b strings.Builder
	for _, syl := range s.Syllables {
		b.WriteString(syl.Transliterate(scheme))
	}
	return b.String()
}

// Words splits assembled items into words at whitespace and danda (|).
// Other unmatched characters are dropped.
func Words(items []Item) Vaakya {
	var (
		v   Vaakya
		cur Pada
	)
	for _, it := range items {
		switch {
		case it.IsSyllable():
			cur.Syllables = append(cur.Syllables, it.Syllable)
		case IsWordBreak(it.Unmatched):
			if len(cur.Syllables) > 0 {
				v.Padas = append(v.Padas, cur)
				cur = Pada{}
			}
		}
	}
	if len(cur.Syllables) > 0 {
		v.Padas = append(v.Padas, cur)
	}
	return v
}

// IsWordBreak reports whether r separates words: whitespace or danda.
func IsWordBreak(r rune) bool {
	return strings.ContainsRune(" \t\n\r|", r)
}
