package varna

import (
	"errors"
	"fmt"
	"sort"
)

// MaxKeyLen is the longest transliteration key a table may hold, in runes.
const MaxKeyLen = 3

// ErrDuplicateKey is returned when two units share a transliteration key.
var ErrDuplicateKey = errors.New("duplicate key")

// Table maps transliteration keys to units. It is never mutated after
// NewTable returns, so concurrent lookups need no locking.
type Table struct {
	units  map[string]Unit
	maxLen int
}

// NewTable builds a table from the given units.
func NewTable(units ...Unit) (*Table, error) {
	t := &Table{units: make(map[string]Unit, len(units))}
	for _, u := range units {
		if err := u.Validate(); err != nil {
			return nil, err
		}
		if _, ok := t.units[u.Key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, u.Key)
		}
		t.units[u.Key] = u
		if n := len([]rune(u.Key)); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. Intended for static data.
func MustTable(units ...Unit) *Table {
	t, err := NewTable(units...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the unit for an exact, case-sensitive key.
func (t *Table) Lookup(key string) (Unit, bool) {
	u, ok := t.units[key]
	return u, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.units)
}

// LongestKey returns the length in runes of the longest key in the table.
func (t *Table) LongestKey() int {
	return t.maxLen
}

// Units returns all entries ordered by key.
func (t *Table) Units() []Unit {
	out := make([]Unit, 0, len(t.units))
	for _, u := range t.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ByClass returns the entries of one class ordered by key.
func (t *Table) ByClass(c Class) []Unit {
	var out []Unit
	for _, u := range t.Units() {
		if u.Class == c {
			out = append(out, u)
		}
	}
	return out
}
