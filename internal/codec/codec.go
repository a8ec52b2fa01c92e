// Package codec reads and writes the JSON interchange format for units,
// syllables and metrical groups.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/shiksha/internal/akshara"
	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/varna"
)

// ErrDecode is the sentinel wrapped by DecodeError.
var ErrDecode = errors.New("deserialization error")

// DecodeError reports a record that could not be turned back into a value.
type DecodeError struct {
	Path string // location in the document, e.g. "syllables[2].units[0]"
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// UnitRecord carries every attribute of a unit by name.
type UnitRecord struct {
	Key      string `json:"key"`
	Script   string `json:"script"`
	Unicode  string `json:"unicode"`
	Class    string `json:"class"`
	Pitch    string `json:"pitch,omitempty"`
	Duration string `json:"duration,omitempty"`
	Note     string `json:"note,omitempty"`
	Place    string `json:"place,omitempty"`
	Effort   string `json:"effort,omitempty"`
}

// SyllableRecord carries a syllable, its unified attributes and, once
// scanned, its weight.
type SyllableRecord struct {
	Units    []UnitRecord `json:"units"`
	Pitch    string       `json:"pitch,omitempty"`
	Note     string       `json:"note,omitempty"`
	Duration string       `json:"duration,omitempty"`
	Weight   string       `json:"weight,omitempty"`
}

// NodeRecord is one child of a group: exactly one field is set.
type NodeRecord struct {
	Weight   string          `json:"weight,omitempty"`
	Syllable *SyllableRecord `json:"syllable,omitempty"`
	Group    *GroupRecord    `json:"group,omitempty"`
}

// GroupRecord carries a metrical group and its children.
type GroupRecord struct {
	Kind     string       `json:"kind"`
	Children []NodeRecord `json:"children"`
	Total    int          `json:"total"`
}

// EncodeUnit converts a unit to its record.
func EncodeUnit(u varna.Unit) UnitRecord {
	return UnitRecord{
		Key:      u.Key,
		Script:   u.Script,
		Unicode:  u.Unicode,
		Class:    string(u.Class),
		Pitch:    string(u.Pitch),
		Duration: string(u.Duration),
		Note:     string(u.Note),
		Place:    string(u.Place),
		Effort:   string(u.Effort),
	}
}

// DecodeUnit converts a record back to a unit. Unknown attribute names fail.
func DecodeUnit(r UnitRecord) (varna.Unit, error) {
	u := varna.Unit{Key: r.Key, Script: r.Script, Unicode: r.Unicode}
	var err error
	if u.Class, err = varna.ParseClass(r.Class); err != nil {
		return varna.Unit{}, err
	}
	if u.Pitch, err = varna.ParsePitch(r.Pitch); err != nil {
		return varna.Unit{}, err
	}
	if u.Duration, err = varna.ParseDuration(r.Duration); err != nil {
		return varna.Unit{}, err
	}
	if u.Note, err = varna.ParseNote(r.Note); err != nil {
		return varna.Unit{}, err
	}
	if u.Place, err = varna.ParsePlace(r.Place); err != nil {
		return varna.Unit{}, err
	}
	if u.Effort, err = varna.ParseEffort(r.Effort); err != nil {
		return varna.Unit{}, err
	}
	if err := u.Validate(); err != nil {
		return varna.Unit{}, err
	}
	return u, nil
}

// EncodeSyllable converts a syllable to its record. weight may be empty.
func EncodeSyllable(s akshara.Syllable, weight chandas.Weight) SyllableRecord {
	units := s.Units()
	rec := SyllableRecord{
		Units:    make([]UnitRecord, len(units)),
		Pitch:    string(s.Pitch()),
		Note:     string(s.Note()),
		Duration: string(s.Duration()),
		Weight:   string(weight),
	}
	for i, u := range units {
		rec.Units[i] = EncodeUnit(u)
	}
	return rec
}

// DecodeSyllable rebuilds a syllable from its record, re-checking consistency.
// The recorded weight, if any, is parsed and returned alongside.
func DecodeSyllable(r SyllableRecord) (akshara.Syllable, chandas.Weight, error) {
	units := make([]varna.Unit, len(r.Units))
	for i, ur := range r.Units {
		u, err := DecodeUnit(ur)
		if err != nil {
			return akshara.Syllable{}, "", &DecodeError{Path: fmt.Sprintf("units[%d]", i), Err: err}
		}
		units[i] = u
	}
	s, err := akshara.New(units...)
	if err != nil {
		return akshara.Syllable{}, "", &DecodeError{Err: err}
	}
	var w chandas.Weight
	if r.Weight != "" {
		if w, err = chandas.ParseWeight(r.Weight); err != nil {
			return akshara.Syllable{}, "", &DecodeError{Path: "weight", Err: err}
		}
	}
	return s, w, nil
}

// EncodeGroup converts a group and all its descendants to records.
func EncodeGroup(g *chandas.Group) GroupRecord {
	rec := GroupRecord{Kind: string(g.Kind), Total: g.Total()}
	for _, c := range g.Children() {
		switch v := c.(type) {
		case chandas.Weight:
			rec.Children = append(rec.Children, NodeRecord{Weight: string(v)})
		case chandas.Scanned:
			sr := EncodeSyllable(v.Syllable, v.Weight)
			rec.Children = append(rec.Children, NodeRecord{Syllable: &sr})
		case *chandas.Group:
			gr := EncodeGroup(v)
			rec.Children = append(rec.Children, NodeRecord{Group: &gr})
		}
	}
	return rec
}

// DecodeGroup rebuilds a group. The recorded total is ignored and recomputed.
func DecodeGroup(r GroupRecord) (*chandas.Group, error) {
	kind, err := parseKind(r.Kind)
	if err != nil {
		return nil, &DecodeError{Path: "kind", Err: err}
	}
	g := chandas.NewGroup(kind)
	for i, n := range r.Children {
		child, err := decodeNode(n)
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				return nil, &DecodeError{Path: joinPath(fmt.Sprintf("children[%d]", i), de.Path), Err: de.Err}
			}
			return nil, &DecodeError{Path: fmt.Sprintf("children[%d]", i), Err: err}
		}
		g.Append(child)
	}
	return g, nil
}

func decodeNode(n NodeRecord) (chandas.Measurer, error) {
	set := 0
	if n.Weight != "" {
		set++
	}
	if n.Syllable != nil {
		set++
	}
	if n.Group != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("node must hold exactly one of weight, syllable, group (has %d)", set)
	}

	switch {
	case n.Weight != "":
		return chandas.ParseWeight(n.Weight)
	case n.Syllable != nil:
		s, w, err := DecodeSyllable(*n.Syllable)
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				return nil, &DecodeError{Path: joinPath("syllable", de.Path), Err: de.Err}
			}
			return nil, err
		}
		if w == "" {
			return nil, &DecodeError{Path: "syllable", Err: errors.New("syllable child without weight")}
		}
		return chandas.Scanned{Syllable: s, Weight: w}, nil
	default:
		return DecodeGroup(*n.Group)
	}
}

func parseKind(s string) (chandas.Kind, error) {
	switch k := chandas.Kind(s); k {
	case chandas.KindGana, chandas.KindPada, chandas.KindVaakya, chandas.KindSutra:
		return k, nil
	}
	return "", &varna.UnknownVariantError{Attribute: "kind", Value: s}
}

func joinPath(a, b string) string {
	if b == "" {
		return a
	}
	return a + "." + b
}

// Write encodes v as indented JSON.
func Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Read decodes JSON into v, rejecting unknown fields.
func Read(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
