// Package varna defines Sanskrit phonetic units and the table that maps
// transliteration keys to them.
package varna

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is the sentinel wrapped by UnknownVariantError.
var ErrUnknownVariant = errors.New("unknown variant")

// UnknownVariantError reports an attribute name that matches no defined variant.
type UnknownVariantError struct {
	Attribute string // e.g. "pitch", "place"
	Value     string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Attribute, e.Value)
}

func (e *UnknownVariantError) Unwrap() error {
	return ErrUnknownVariant
}

// Pitch is the tonal accent (swara) of a vowel.
type Pitch string

const (
	PitchHigh  Pitch = "udaatta"   // raised
	PitchLow   Pitch = "anudaatta" // not raised
	PitchMixed Pitch = "svarita"   // falling
)

// Duration is the length (matra) of a vowel.
type Duration string

const (
	DurationShort     Duration = "hrasva"
	DurationLong      Duration = "diirgha"
	DurationProlonged Duration = "pluta"
)

// Place is the place of articulation (sthana).
type Place string

const (
	PlaceChest      Place = "uras"
	PlaceThroat     Place = "kantha"
	PlacePalate     Place = "taalu"
	PlaceTongueRoot Place = "jihvaamuula"
	PlaceTeeth      Place = "danta"
	PlaceNose       Place = "naasikaa"
	PlaceLips       Place = "oshtha"
	PlaceHead       Place = "muurdhaa"
)

// Effort is the articulatory effort (prayatna).
type Effort string

const (
	EffortFullContact      Effort = "sprshta"
	EffortSlightContact    Effort = "iishatsprshta"
	EffortOpen             Effort = "vivrta"
	EffortSemiClosed       Effort = "samvrta"
	EffortLightAspiration  Effort = "alpapraana"
	EffortStrongAspiration Effort = "mahaapraana"
	EffortNasal            Effort = "naasikya"
	EffortSemiNasal        Effort = "anunaasika"
)

// Note is the saman chant note (sama svara) a vowel is sung on.
type Note string

const (
	NoteSa  Note = "sa"
	NoteRi  Note = "ri"
	NoteGa  Note = "ga"
	NoteMa  Note = "ma"
	NotePa  Note = "pa"
	NoteDha Note = "dha"
	NoteNi  Note = "ni"
)

// Class is the traditional grouping a unit belongs to.
type Class string

const (
	ClassVowel     Class = "swara"
	ClassStop      Class = "sparsha"
	ClassSemivowel Class = "antastha"
	ClassSibilant  Class = "ushma"
	ClassAnusvara  Class = "anusvara"
	ClassVisarga   Class = "visarga"
	ClassYama      Class = "yama"
)

var (
	pitches   = []Pitch{PitchHigh, PitchLow, PitchMixed}
	durations = []Duration{DurationShort, DurationLong, DurationProlonged}
	places    = []Place{PlaceChest, PlaceThroat, PlacePalate, PlaceTongueRoot, PlaceTeeth, PlaceNose, PlaceLips, PlaceHead}
	efforts   = []Effort{
		EffortFullContact, EffortSlightContact, EffortOpen, EffortSemiClosed,
		EffortLightAspiration, EffortStrongAspiration, EffortNasal, EffortSemiNasal,
	}
	notes   = []Note{NoteSa, NoteRi, NoteGa, NoteMa, NotePa, NoteDha, NoteNi}
	classes = []Class{ClassVowel, ClassStop, ClassSemivowel, ClassSibilant, ClassAnusvara, ClassVisarga, ClassYama}
)

// parseVariant matches s against the defined variants, ignoring case.
// The empty string is the absent value and always parses.
func parseVariant[T ~string](attribute, s string, variants []T) (T, error) {
	if s == "" {
		return "", nil
	}
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, v := range variants {
		if string(v) == lower {
			return v, nil
		}
	}
	return "", &UnknownVariantError{Attribute: attribute, Value: s}
}

// ParsePitch parses a pitch name. The empty string yields no pitch.
func ParsePitch(s string) (Pitch, error) { return parseVariant("pitch", s, pitches) }

// ParseDuration parses a vowel duration name.
func ParseDuration(s string) (Duration, error) { return parseVariant("duration", s, durations) }

// ParsePlace parses a place of articulation name.
func ParsePlace(s string) (Place, error) { return parseVariant("place", s, places) }

// ParseEffort parses an articulation effort name.
func ParseEffort(s string) (Effort, error) { return parseVariant("effort", s, efforts) }

// ParseNote parses a saman note name.
func ParseNote(s string) (Note, error) { return parseVariant("note", s, notes) }

// ParseClass parses a unit class name.
func ParseClass(s string) (Class, error) { return parseVariant("class", s, classes) }

func (p *Pitch) UnmarshalText(b []byte) (err error) {
	*p, err = ParsePitch(string(b))
	return err
}

func (d *Duration) UnmarshalText(b []byte) (err error) {
	*d, err = ParseDuration(string(b))
	return err
}

func (p *Place) UnmarshalText(b []byte) (err error) {
	*p, err = ParsePlace(string(b))
	return err
}

func (e *Effort) UnmarshalText(b []byte) (err error) {
	*e, err = ParseEffort(string(b))
	return err
}

func (n *Note) UnmarshalText(b []byte) (err error) {
	*n, err = ParseNote(string(b))
	return err
}

func (c *Class) UnmarshalText(b []byte) (err error) {
	*c, err = ParseClass(string(b))
	return err
}
