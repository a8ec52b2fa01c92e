package chandas

import (
	"errors"
	"fmt"

	"github.com/f3rmion/shiksha/internal/akshara"
	"github.com/f3rmion/shiksha/internal/varna"
)

// ErrNoNucleus is returned when classifying a syllable that has no vowel.
var ErrNoNucleus = errors.New("syllable has no vowel")

// Policy decides how prolonged (pluta) vowels are weighed.
type Policy string

const (
	// ProlongedExtended weighs pluta vowels as their own 3-kaala class.
	ProlongedExtended Policy = "extended"
	// ProlongedHeavy folds pluta vowels into guru.
	ProlongedHeavy Policy = "heavy"
)

// ParsePolicy parses a policy name; the empty string selects ProlongedExtended.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", ProlongedExtended:
		return ProlongedExtended, nil
	case ProlongedHeavy:
		return ProlongedHeavy, nil
	}
	return "", &varna.UnknownVariantError{Attribute: "policy", Value: s}
}

// Classifier assigns weights to syllables. The zero value uses
// ProlongedExtended.
type Classifier struct {
	Policy Policy
}

// Classify returns the weight of s. next is the syllable that follows s, or
// the zero Syllable at the end of a line; its onset supplies the consonants
// that close s.
//
// Rules, in order: a long vowel is guru and a prolonged one pluta (or guru
// under ProlongedHeavy); a short vowel followed by more than one consonant
// before the next vowel is guru; a short vowel followed by anusvara or
// visarga is guru; anything else is laghu.
func (c Classifier) Classify(s, next akshara.Syllable) (Weight, error) {
	nucleus, ok := s.Nucleus()
	if !ok {
		return "", fmt.Errorf("classify %q: %w", s.String(), ErrNoNucleus)
	}

	switch nucleus.Duration {
	case varna.DurationLong:
		return Heavy, nil
	case varna.DurationProlonged:
		if c.Policy == ProlongedHeavy {
			return Heavy, nil
		}
		return Extended, nil
	}

	closing := append(s.Coda(), next.Onset()...)
	if len(closing) > 1 {
		return Heavy, nil
	}
	if len(closing) == 1 && closing[0].IsNasalization() {
		return Heavy, nil
	}
	return Light, nil
}

// Scan classifies every syllable that has a vowel, using the consonants up
// to the next vowel as context. Vowel-less syllables are skipped: their
// consonants are counted as closing the syllable before them.
func (c Classifier) Scan(syllables []akshara.Syllable) ([]Weight, error) {
	var out []Weight
	for i, s := range syllables {
		if _, ok := s.Nucleus(); !ok {
			continue
		}
		next, err := following(syllables[i+1:])
		if err != nil {
			return nil, err
		}
		w, err := c.Classify(s, next)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// following returns the syllable that follows in rest, merged with any
// vowel-less syllables in front of it so its onset spans every consonant up
// to the next vowel. A word-final consonant separated from the next word
// by a space therefore still closes the syllable before it.
func following(rest []akshara.Syllable) (akshara.Syllable, error) {
	if len(rest) == 0 {
		return akshara.Syllable{}, nil
	}
	if _, ok := rest[0].Nucleus(); ok {
		return rest[0], nil
	}
	var units []varna.Unit
	for _, s := range rest {
		if _, ok := s.Nucleus(); ok {
			units = append(units, s.Onset()...)
			break
		}
		units = append(units, s.Units()...)
	}
	return akshara.New(units...)
}

// Scanned pairs a syllable with its weight.
type Scanned struct {
	Syllable akshara.Syllable
	Weight   Weight
}

// Kaala returns the duration of the syllable's weight.
func (s Scanned) Kaala() int {
	return s.Weight.Kaala()
}

// ScanSyllables is Scan keeping each weight next to its syllable.
func (c Classifier) ScanSyllables(syllables []akshara.Syllable) ([]Scanned, error) {
	weights, err := c.Scan(syllables)
	if err != nil {
		return nil, err
	}
	out := make([]Scanned, 0, len(weights))
	j := 0
	for _, s := range syllables {
		if _, ok := s.Nucleus(); !ok {
			continue
		}
		out = append(out, Scanned{Syllable: s, Weight: weights[j]})
		j++
	}
	return out, nil
}
