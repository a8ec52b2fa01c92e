package chandas

// Measurer is anything with a metrical duration.
type Measurer interface {
	Kaala() int
}

// Kind names the level a Group sits at.
type Kind string

const (
	KindGana   Kind = "gana"   // metrical foot
	KindPada   Kind = "pada"   // word or quarter verse
	KindVaakya Kind = "vaakya" // sentence or line
	KindSutra  Kind = "sutra"  // arbitrary sequence
)

// Group is an ordered container of weights, scanned syllables or nested
// groups. Append is its only mutator and Total is recomputed on every call.
type Group struct {
	Kind     Kind
	children []Measurer
}

// NewGroup creates a group holding the given children.
func NewGroup(kind Kind, children ...Measurer) *Group {
	g := &Group{Kind: kind}
	g.Append(children...)
	return g
}

// Append adds children at the end of the group. Nil children are ignored.
func (g *Group) Append(children ...Measurer) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if cg, ok := c.(*Group); ok && cg == nil {
			continue
		}
		g.children = append(g.children, c)
	}
}

// Children returns a copy of the group's children.
func (g *Group) Children() []Measurer {
	return append([]Measurer(nil), g.children...)
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.children)
}

// Total returns the summed duration of all children, recursing into groups.
func (g *Group) Total() int {
	total := 0
	for _, c := range g.children {
		total += c.Kaala()
	}
	return total
}

// Kaala lets a group nest inside another group.
func (g *Group) Kaala() int {
	return g.Total()
}

// Weights flattens the group into the weights of its leaves, in order.
func (g *Group) Weights() []Weight {
	var out []Weight
	for _, c := range g.children {
		switch v := c.(type) {
		case Weight:
			out = append(out, v)
		case Scanned:
			out = append(out, v.Weight)
		case *Group:
			out = append(out, v.Weights()...)
		}
	}
	return out
}

// Pattern returns the scansion marks of all leaves.
func (g *Group) Pattern() string {
	return Pattern(g.Weights())
}
