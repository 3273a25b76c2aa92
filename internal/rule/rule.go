package rule

import (
	"regexp"
	"strings"
)

// andSeparator reports whether r separates AND-groups. The ASCII and
// full-width semicolons are interchangeable so rules can be typed without
// switching input methods.
func andSeparator(r rune) bool {
	return r == ';' || r == '；'
}

// Term is the predicate of a single AND-group.
type Term interface {
	// isTerm restricts implementations to this package; evaluation lives
	// on Evaluator, which needs the normalizer.
	isTerm()
}

// PlainTerm matches if any of its literal alternatives, in any script
// variant, is a substring of any variant of the title. A PlainTerm with no
// alternatives (a group that was only "|" characters) matches nothing,
// which makes the whole rule unsatisfiable.
type PlainTerm struct {
	Alternatives []string
}

func (PlainTerm) isTerm() {}

// RegexTerm matches if its case-insensitive pattern finds a match in any
// variant of the title. When the pattern does not compile, re is nil and
// the term degrades to literal containment of the pattern body.
type RegexTerm struct {
	Pattern string // body between the slashes, as typed
	re      *regexp.Regexp
	literal string // lowercased fallback needle, set when re == nil
}

func (RegexTerm) isTerm() {}

// Fallback reports whether this term degraded to literal matching.
func (t *RegexTerm) Fallback() bool {
	return t.re == nil
}

// Rule is the parsed form of a raw rule string. A Rule with no groups is
// the match-all sentinel.
type Rule struct {
	raw    string
	groups []Term
}

// Raw returns the rule string the Rule was parsed from.
func (r *Rule) Raw() string { return r.raw }

// MatchAll reports whether this is the match-all sentinel (empty or
// whitespace-only raw rule, or one consisting solely of separators).
func (r *Rule) MatchAll() bool { return len(r.groups) == 0 }

// Groups returns the AND-group terms in rule order.
func (r *Rule) Groups() []Term { return r.groups }

// Fallbacks returns the pattern bodies of regex terms that failed to
// compile and degraded to literal matching. Callers use this to emit a
// diagnostic once per parsed rule; the degradation itself is not an error.
func (r *Rule) Fallbacks() []string {
	var out []string
	for _, g := range r.groups {
		if rt, ok := g.(*RegexTerm); ok && rt.Fallback() {
			out = append(out, rt.Pattern)
		}
	}
	return out
}

// Parse builds a Rule from a raw rule string. Parse is total: it never
// fails, on any input. Whitespace around groups, alternatives, and the
// whole rule is insignificant. Empty groups produced by adjacent
// separators are dropped rather than treated as always-true or
// always-false.
func Parse(raw string) *Rule {
	r := &Rule{raw: raw}

	for _, seg := range strings.FieldsFunc(raw, andSeparator) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		r.groups = append(r.groups, parseTerm(seg))
	}

	return r
}

// parseTerm classifies one trimmed, non-empty AND-group segment.
func parseTerm(seg string) Term {
	if len(seg) > 2 && strings.HasPrefix(seg, "/") && strings.HasSuffix(seg, "/") {
		return parseRegexTerm(seg[1 : len(seg)-1])
	}

	t := &PlainTerm{}
	for _, alt := range strings.Split(seg, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		t.Alternatives = append(t.Alternatives, alt)
	}
	return t
}

// parseRegexTerm compiles the pattern body case-insensitively. A body that
// does not compile must not abort parsing of the remaining groups; the term
// keeps the body as a literal needle instead.
func parseRegexTerm(body string) *RegexTerm {
	t := &RegexTerm{Pattern: body}

	re, err := regexp.Compile("(?i)" + body)
	if err != nil {
		t.literal = strings.ToLower(body)
		return t
	}
	t.re = re
	return t
}
