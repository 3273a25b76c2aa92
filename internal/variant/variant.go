package variant

import (
	"fmt"
	"strings"
)

// Converter maps text between the two Chinese script conventions.
// Implementations must be pure: same input, same output, no retained state
// visible to callers.
type Converter interface {
	// ToSimplified converts text to Simplified script.
	ToSimplified(text string) (string, error)
	// ToTraditional converts text to Traditional script.
	ToTraditional(text string) (string, error)
}

// Variants holds the three comparable forms of one string. All fields are
// lowercased; Original is the lowercased input, not the input itself.
type Variants struct {
	Original    string
	Simplified  string
	Traditional string
}

// Forms returns the three variant strings for iteration.
func (v Variants) Forms() [3]string {
	return [3]string{v.Original, v.Simplified, v.Traditional}
}

// ContainsAny reports whether needle is a substring of any variant form.
func (v Variants) ContainsAny(needle string) bool {
	return strings.Contains(v.Original, needle) ||
		strings.Contains(v.Simplified, needle) ||
		strings.Contains(v.Traditional, needle)
}

// Normalizer produces variant sets using an injected Converter.
type Normalizer struct {
	conv Converter
}

// NewNormalizer creates a Normalizer backed by the given converter.
func NewNormalizer(conv Converter) *Normalizer {
	return &Normalizer{conv: conv}
}

// Normalize returns the lowercased original of text plus its lowercased
// Simplified and Traditional conversions. Conversion failures are
// propagated: a title whose variants cannot be computed cannot be safely
// judged by any variant-based match.
func (n *Normalizer) Normalize(text string) (Variants, error) {
	simp, err := n.conv.ToSimplified(text)
	if err != nil {
		return Variants{}, fmt.Errorf("to simplified: %w", err)
	}
	trad, err := n.conv.ToTraditional(text)
	if err != nil {
		return Variants{}, fmt.Errorf("to traditional: %w", err)
	}
	return Variants{
		Original:    strings.ToLower(text),
		Simplified:  strings.ToLower(simp),
		Traditional: strings.ToLower(trad),
	}, nil
}

// Identity is a Converter that returns its input unchanged in both
// directions. It keeps unit tests independent of any conversion dictionary.
type Identity struct{}

// ToSimplified returns text unchanged.
func (Identity) ToSimplified(text string) (string, error) { return text, nil }

// ToTraditional returns text unchanged.
func (Identity) ToTraditional(text string) (string, error) { return text, nil }
