// Package akshara groups phonetic units into syllables.
package akshara

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/shiksha/internal/varna"
)

var (
	// ErrEmptySyllable is returned when a syllable would contain no units.
	ErrEmptySyllable = errors.New("empty syllable")
	// ErrInconsistentSyllable is the sentinel wrapped by InconsistentError.
	ErrInconsistentSyllable = errors.New("inconsistent syllable")
)

// InconsistentError reports two units of one syllable that disagree on an
// attribute both of them carry.
type InconsistentError struct {
	Keys      []string // keys of the whole group
	Attribute string   // "pitch", "note" or "duration"
	First     string
	Second    string
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("inconsistent syllable %q: %s %s vs %s",
		strings.Join(e.Keys, ""), e.Attribute, e.First, e.Second)
}

func (e *InconsistentError) Unwrap() error {
	return ErrInconsistentSyllable
}

// Syllable is a non-empty run of units treated as one pronounceable group.
// All units agree on pitch, note and duration wherever more than one carries it.
type Syllable struct {
	units    []varna.Unit
	pitch    varna.Pitch
	note     varna.Note
	duration varna.Duration
}

// New builds a syllable, checking the consistency of its units.
func New(units ...varna.Unit) (Syllable, error) {
	if len(units) == 0 {
		return Syllable{}, ErrEmptySyllable
	}

	s := Syllable{units: append([]varna.Unit(nil), units...)}
	for _, u := range units {
		if err := unify(&s.pitch, u.Pitch, "pitch", units); err != nil {
			return Syllable{}, err
		}
		if err := unify(&s.note, u.Note, "note", units); err != nil {
			return Syllable{}, err
		}
		if err := unify(&s.duration, u.Duration, "duration", units); err != nil {
			return Syllable{}, err
		}
	}
	return s, nil
}

// unify records v into *dst, failing when *dst already holds a different value.
func unify[T ~string](dst *T, v T, attribute string, units []varna.Unit) error {
	if v == "" {
		return nil
	}
	if *dst == "" {
		*dst = v
		return nil
	}
	if *dst != v {
		return &InconsistentError{
			Keys:      keys(units),
			Attribute: attribute,
			First:     string(*dst),
			Second:    string(v),
		}
	}
	return nil
}

func keys(units []varna.Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Key
	}
	return out
}

// IsZero reports whether s is the zero Syllable, which stands for "no syllable".
func (s Syllable) IsZero() bool {
	return len(s.units) == 0
}

// Units returns a copy of the syllable's units.
func (s Syllable) Units() []varna.Unit {
	return append([]varna.Unit(nil), s.units...)
}

// Len returns the number of units.
func (s Syllable) Len() int {
	return len(s.units)
}

// Pitch returns the unified pitch, or "" when no unit carries one.
func (s Syllable) Pitch() varna.Pitch { return s.pitch }

// Note returns the unified saman note.
func (s Syllable) Note() varna.Note { return s.note }

// Duration returns the unified vowel duration.
func (s Syllable) Duration() varna.Duration { return s.duration }

// WithPitch returns a copy of s with every pitched unit, and the syllable
// itself, set to p.
func (s Syllable) WithPitch(p varna.Pitch) Syllable {
	out := Syllable{units: s.Units(), pitch: p, note: s.note, duration: s.duration}
	for i := range out.units {
		if out.units[i].Pitch != "" {
			out.units[i].Pitch = p
		}
	}
	return out
}

// Nucleus returns the syllable's vowel, if it has one.
func (s Syllable) Nucleus() (varna.Unit, bool) {
	if i := s.nucleusIndex(); i >= 0 {
		return s.units[i], true
	}
	return varna.Unit{}, false
}

func (s Syllable) nucleusIndex() int {
	for i, u := range s.units {
		if u.IsVowel() {
			return i
		}
	}
	return -1
}

// Onset returns the units before the nucleus. A syllable without a vowel is
// all onset.
func (s Syllable) Onset() []varna.Unit {
	i := s.nucleusIndex()
	if i < 0 {
		return s.Units()
	}
	return append([]varna.Unit(nil), s.units[:i]...)
}

// Coda returns the units after the nucleus.
func (s Syllable) Coda() []varna.Unit {
	i := s.nucleusIndex()
	if i < 0 {
		return nil
	}
	return append([]varna.Unit(nil), s.units[i+1:]...)
}

// Transliterate renders the syllable's units in the given scheme.
func (s Syllable) Transliterate(scheme varna.Scheme) string {
	var b strings.Builder
	for _, u := range s.units {
		b.WriteString(u.Render(scheme))
	}
	return b.String()
}

func (s Syllable) String() string {
	return s.Transliterate(varna.SchemeHarvardKyoto)
}

// Equal reports whether both syllables hold the same units in order.
func (s Syllable) Equal(o Syllable) bool {
	if len(s.units) != len(o.units) {
		return false
	}
	for i := range s.units {
		if s.units[i] != o.units[i] {
			return false
		}
	}
	return true
}
