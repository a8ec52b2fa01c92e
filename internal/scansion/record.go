package scansion

import (
	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/codec"
)

// Record is the serialised form of a Result, used for JSON output and the
// scan history.
type Record struct {
	Text      string            `json:"text"`
	Policy    string            `json:"policy"`
	Pattern   string            `json:"pattern"`
	Total     int               `json:"total"`
	Feet      []string          `json:"feet,omitempty"`
	Unmatched string            `json:"unmatched,omitempty"`
	Line      codec.GroupRecord `json:"line"`
}

// Record converts the result for serialisation under the given policy.
func (r *Result) Record(policy chandas.Policy) Record {
	return Record{
		Text:      r.Text,
		Policy:    string(policy),
		Pattern:   r.Pattern(),
		Total:     r.Total(),
		Feet:      r.Feet(),
		Unmatched: string(r.Unmatched),
		Line:      codec.EncodeGroup(r.Line),
	}
}

// Group decodes the record's group, recomputing totals. The stored pattern
// and total are not trusted.
func (rec Record) Group() (*chandas.Group, error) {
	return codec.DecodeGroup(rec.Line)
}
