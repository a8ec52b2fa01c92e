// Package chandas classifies syllable weight and measures metrical duration.
package chandas

import (
	"fmt"
	"strings"

	"github.com/f3rmion/shiksha/internal/varna"
)

// Weight is the metrical class (maatra) of a syllable.
type Weight string

const (
	Light    Weight = "laghu" // 1 kaala
	Heavy    Weight = "guru"  // 2 kaala
	Extended Weight = "pluta" // 3 kaala
)

// ParseWeight parses a weight by name or by its symbol (L, G, P).
func ParseWeight(s string) (Weight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "laghu", "l":
		return Light, nil
	case "guru", "g":
		return Heavy, nil
	case "pluta", "p":
		return Extended, nil
	}
	return "", &varna.UnknownVariantError{Attribute: "weight", Value: s}
}

func (w *Weight) UnmarshalText(b []byte) (err error) {
	*w, err = ParseWeight(string(b))
	return err
}

// Kaala returns the number of time units the weight lasts.
func (w Weight) Kaala() int {
	switch w {
	case Light:
		return 1
	case Heavy:
		return 2
	case Extended:
		return 3
	}
	return 0
}

// Symbol returns the one-letter scansion mark: L, G or P.
func (w Weight) Symbol() string {
	switch w {
	case Light:
		return "L"
	case Heavy:
		return "G"
	case Extended:
		return "P"
	}
	return "?"
}

func (w Weight) String() string {
	return string(w)
}

// Pattern renders weights as a string of scansion marks, e.g. "LGG".
func Pattern(weights []Weight) string {
	var b strings.Builder
	for _, w := range weights {
		b.WriteString(w.Symbol())
	}
	return b.String()
}

// ParsePattern is the inverse of Pattern.
func ParsePattern(s string) ([]Weight, error) {
	out := make([]Weight, 0, len(s))
	for _, r := range s {
		w, err := ParseWeight(string(r))
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", s, err)
		}
		out = append(out, w)
	}
	return out, nil
}
