package akshara

import (
	"iter"

	"github.com/f3rmion/shiksha/internal/lexer"
	"github.com/f3rmion/shiksha/internal/varna"
)

// Item is one element of assembled output: a syllable or a passed-through
// unmatched character.
type Item struct {
	Syllable  Syllable
	Unmatched rune
}

// IsSyllable reports whether the item holds a syllable.
func (it Item) IsSyllable() bool {
	return !it.Syllable.IsZero()
}

func (it Item) String() string {
	if it.IsSyllable() {
		return it.Syllable.String()
	}
	return string(it.Unmatched)
}

// Option configures Assemble.
type Option func(*options)

type options struct {
	accents map[rune]varna.Pitch
}

// WithAccentMarkers treats the given characters as accent marks. A mark sets
// the pitch of the voweled syllable just before it and is not kept as a unit
// or item, so it never counts as a consonant. Marks take precedence over
// table entries with the same single-character key. A mark with no voweled
// syllable right before it is passed through like any unmatched character.
func WithAccentMarkers(markers map[rune]varna.Pitch) Option {
	return func(o *options) { o.accents = markers }
}

// BarahaAccents returns the Baraha accent marks: q for anudaatta and # for
// svarita.
func BarahaAccents() map[rune]varna.Pitch {
	return map[rune]varna.Pitch{
		'q': varna.PitchLow,
		'#': varna.PitchMixed,
	}
}

func (o *options) marker(tok lexer.Token) (rune, varna.Pitch, bool) {
	r := tok.Rune()
	if tok.IsUnit() {
		key := []rune(tok.Unit().Key)
		if len(key) != 1 {
			return 0, "", false
		}
		r = key[0]
	}
	p, ok := o.accents[r]
	return r, p, ok
}

// accent sets the pitch of the last item if it is a voweled syllable.
func accent(items []Item, p varna.Pitch) bool {
	if len(items) == 0 {
		return false
	}
	last := &items[len(items)-1]
	if _, ok := last.Syllable.Nucleus(); !ok {
		return false
	}
	last.Syllable = last.Syllable.WithPitch(p)
	return true
}

// Assemble folds tokens into syllables. Units accumulate until a vowel, which
// closes the syllable. An unmatched character closes any pending syllable and
// is then emitted unchanged. Units left over at the end form a final,
// vowel-less syllable. The first inconsistent group aborts assembly.
func Assemble(tokens iter.Seq[lexer.Token], opts ...Option) ([]Item, error) {
	var (
		o       options
		items   []Item
		pending []varna.Unit
	)
	for _, opt := range opts {
		opt(&o)
	}

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		s, err := New(pending...)
		if err != nil {
			return err
		}
		items = append(items, Item{Syllable: s})
		pending = pending[:0]
		return nil
	}

	for tok := range tokens {
		if r, p, ok := o.marker(tok); ok {
			if accent(items, p) {
				continue
			}
			if err := flush(); err != nil {
				return nil, err
			}
			items = append(items, Item{Unmatched: r})
			continue
		}
		if !tok.IsUnit() {
			if err := flush(); err != nil {
				return nil, err
			}
			items = append(items, Item{Unmatched: tok.Rune()})
			continue
		}
		u := tok.Unit()
		pending = append(pending, u)
		if u.IsVowel() {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return items, nil
}

// Slice adapts a token slice for Assemble.
func Slice(tokens []lexer.Token) iter.Seq[lexer.Token] {
	return func(yield func(lexer.Token) bool) {
		for _, t := range tokens {
			if !yield(t) {
				return
			}
		}
	}
}

// Syllables returns only the syllables among items, in order.
func Syllables(items []Item) []Syllable {
	var out []Syllable
	for _, it := range items {
		if it.IsSyllable() {
			out = append(out, it.Syllable)
		}
	}
	return out
}
