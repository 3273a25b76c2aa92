package variant

import (
	"errors"
	"strings"
	"testing"
)

// tableConverter converts via fixed character tables.
type tableConverter struct {
	simp *strings.Replacer
	trad *strings.Replacer
}

func (c tableConverter) ToSimplified(s string) (string, error)  { return c.simp.Replace(s), nil }
func (c tableConverter) ToTraditional(s string) (string, error) { return c.trad.Replace(s), nil }

func newTableConverter() tableConverter {
	return tableConverter{
		simp: strings.NewReplacer("簡", "简", "體", "体"),
		trad: strings.NewReplacer("简", "簡", "体", "體"),
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(newTableConverter())

	v, err := n.Normalize("[簡體] Show HEVC")
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	if v.Original != "[簡體] show hevc" {
		t.Errorf("Original = %q, want lowercased input", v.Original)
	}
	if v.Simplified != "[简体] show hevc" {
		t.Errorf("Simplified = %q, want converted and lowercased", v.Simplified)
	}
	if v.Traditional != "[簡體] show hevc" {
		t.Errorf("Traditional = %q, want converted and lowercased", v.Traditional)
	}
}

func TestNormalizeIdentity(t *testing.T) {
	n := NewNormalizer(Identity{})

	v, err := n.Normalize("MiXeD Case")
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	for _, form := range v.Forms() {
		if form != "mixed case" {
			t.Errorf("form = %q, want %q", form, "mixed case")
		}
	}
}

func TestContainsAny(t *testing.T) {
	v := Variants{
		Original:    "[簡體] show",
		Simplified:  "[简体] show",
		Traditional: "[簡體] show",
	}

	tests := []struct {
		needle string
		want   bool
	}{
		{"简体", true}, // only in the simplified form
		{"簡體", true}, // only in original/traditional
		{"show", true},
		{"movie", false},
	}
	for _, tt := range tests {
		if got := v.ContainsAny(tt.needle); got != tt.want {
			t.Errorf("ContainsAny(%q) = %t, want %t", tt.needle, got, tt.want)
		}
	}
}

type errConverter struct {
	err error
}

func (c errConverter) ToSimplified(string) (string, error)  { return "", c.err }
func (c errConverter) ToTraditional(string) (string, error) { return "", c.err }

func TestNormalizeError(t *testing.T) {
	want := errors.New("malformed input")
	n := NewNormalizer(errConverter{err: want})

	if _, err := n.Normalize("x"); !errors.Is(err, want) {
		t.Errorf("Normalize() error = %v, want wrapped %v", err, want)
	}
}
