package varna

import (
	"fmt"
	"strings"
)

// Scheme selects how a unit is rendered.
type Scheme string

const (
	SchemeHarvardKyoto Scheme = "hk"
	SchemeDevanagari   Scheme = "devanagari"
	SchemeUnicode      Scheme = "unicode"
)

// ParseScheme parses a rendering scheme name.
func ParseScheme(s string) (Scheme, error) {
	v, err := parseVariant("scheme", s, []Scheme{SchemeHarvardKyoto, SchemeDevanagari, SchemeUnicode})
	if err == nil && v == "" {
		v = SchemeHarvardKyoto
	}
	return v, err
}

// Unit is an atomic sound (varna) with its phonetic attributes.
// Optional attributes hold the empty string when absent.
type Unit struct {
	Key      string   `yaml:"key" json:"key"`                               // Harvard-Kyoto transliteration
	Script   string   `yaml:"script" json:"script"`                         // Devanagari
	Unicode  string   `yaml:"unicode" json:"unicode"`                       // codepoints, e.g. "U+0916"
	Class    Class    `yaml:"class" json:"class"`                           // swara, sparsha, ...
	Pitch    Pitch    `yaml:"pitch,omitempty" json:"pitch,omitempty"`       // vowels only
	Duration Duration `yaml:"duration,omitempty" json:"duration,omitempty"` // vowels only
	Note     Note     `yaml:"note,omitempty" json:"note,omitempty"`         // vowels only
	Place    Place    `yaml:"place,omitempty" json:"place,omitempty"`
	Effort   Effort   `yaml:"effort,omitempty" json:"effort,omitempty"`
}

// IsVowel reports whether the unit carries a pitch, which only vowels do.
func (u Unit) IsVowel() bool {
	return u.Pitch != ""
}

// IsConsonant reports whether the unit is anything other than a vowel.
func (u Unit) IsConsonant() bool {
	return !u.IsVowel()
}

// IsNasalization reports whether the unit is an anusvara or a visarga.
func (u Unit) IsNasalization() bool {
	return u.Class == ClassAnusvara || u.Class == ClassVisarga
}

// Render returns the unit in the given scheme.
func (u Unit) Render(scheme Scheme) string {
	switch scheme {
	case SchemeDevanagari:
		return u.Script
	case SchemeUnicode:
		if u.Unicode != "" {
			return u.Unicode
		}
		return Codepoints(u.Script)
	default:
		return u.Key
	}
}

func (u Unit) String() string {
	return u.Key
}

// Validate checks that the unit is usable as a table entry.
func (u Unit) Validate() error {
	if u.Key == "" {
		return fmt.Errorf("unit has empty key")
	}
	if n := len([]rune(u.Key)); n > MaxKeyLen {
		return fmt.Errorf("unit %q: key longer than %d characters", u.Key, MaxKeyLen)
	}
	if u.Class == "" {
		return fmt.Errorf("unit %q: missing class", u.Key)
	}
	if !u.IsVowel() && (u.Duration != "" || u.Note != "") {
		return fmt.Errorf("unit %q: duration and note apply only to vowels", u.Key)
	}
	if u.Class == ClassVowel && !u.IsVowel() {
		return fmt.Errorf("unit %q: vowel without pitch", u.Key)
	}
	return nil
}

// Codepoints renders every rune of s as U+XXXX, space separated.
func Codepoints(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
