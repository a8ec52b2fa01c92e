package chandas

// The eight trisyllabic feet, named by the mnemonic yamaataaraajabhaanasalagaam.
var ganas = map[string]string{
	"LGG": "ya",
	"GGG": "ma",
	"GGL": "ta",
	"GLG": "ra",
	"LGL": "ja",
	"GLL": "bha",
	"LLL": "na",
	"LLG": "sa",
}

// GanaName returns the name of the foot formed by three weights. Pluta counts
// as guru. ok is false unless exactly three weights are given.
func GanaName(weights ...Weight) (name string, ok bool) {
	if len(weights) != 3 {
		return "", false
	}
	key := make([]byte, 0, 3)
	for _, w := range weights {
		if w == Light {
			key = append(key, 'L')
		} else {
			key = append(key, 'G')
		}
	}
	name, ok = ganas[string(key)]
	return name, ok
}

// Feet splits weights into trisyllabic feet; the last may be shorter.
func Feet(weights []Weight) []*Group {
	var out []*Group
	for i := 0; i < len(weights); i += 3 {
		end := min(i+3, len(weights))
		g := NewGroup(KindGana)
		for _, w := range weights[i:end] {
			g.Append(w)
		}
		out = append(out, g)
	}
	return out
}

// FootNames returns the traditional names for Feet(weights). Syllables left
// over after the last full foot are named individually "la" or "ga".
func FootNames(weights []Weight) []string {
	var names []string
	for _, foot := range Feet(weights) {
		ws := foot.Weights()
		if name, ok := GanaName(ws...); ok {
			names = append(names, name)
			continue
		}
		for _, w := range ws {
			if w == Light {
				names = append(names, "la")
			} else {
				names = append(names, "ga")
			}
		}
	}
	return names
}
