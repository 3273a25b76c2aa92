package rule

import (
	"github.com/junyuh/titlesift/internal/logging"
	"github.com/junyuh/titlesift/internal/variant"
)

// Evaluator matches parsed rules against titles. It owns the normalizer
// that supplies script-variant forms, so it can be constructed with an
// identity converter in tests and the OpenCC pair in production.
type Evaluator struct {
	norm *variant.Normalizer
	log  *logging.Logger
}

// NewEvaluator creates an Evaluator. log may be logging.NopLogger().
func NewEvaluator(norm *variant.Normalizer, log *logging.Logger) *Evaluator {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Evaluator{norm: norm, log: log}
}

// Matches reports whether title satisfies r. The only error path is a
// conversion failure while computing variant forms; everything else,
// including invalid regex syntax, degrades rather than fails.
func (e *Evaluator) Matches(r *Rule, title string) (bool, error) {
	if r.MatchAll() {
		return true, nil
	}
	tv, err := e.norm.Normalize(title)
	if err != nil {
		return false, err
	}
	return e.MatchesVariants(r, tv)
}

// MatchesVariants is Matches for a title whose variant set has already
// been computed. The filtering pass uses it to share variant sets between
// rules and candidates within one pass.
func (e *Evaluator) MatchesVariants(r *Rule, title variant.Variants) (bool, error) {
	if r.MatchAll() {
		return true, nil
	}
	// AND across groups, short-circuiting on the first failure.
	for _, g := range r.groups {
		ok, err := e.matchTerm(g, title)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (e *Evaluator) matchTerm(t Term, title variant.Variants) (bool, error) {
	switch t := t.(type) {
	case *PlainTerm:
		return e.matchPlain(t, title)
	case *RegexTerm:
		return e.matchRegex(t, title)
	}
	return false, nil
}

// matchPlain is an OR over alternatives, and for each alternative an OR
// over every pairing of its variant forms with the title's variant forms.
// A term with zero alternatives matches nothing.
func (e *Evaluator) matchPlain(t *PlainTerm, title variant.Variants) (bool, error) {
	for _, alt := range t.Alternatives {
		av, err := e.norm.Normalize(alt)
		if err != nil {
			return false, err
		}
		for _, form := range av.Forms() {
			if title.ContainsAny(form) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (e *Evaluator) matchRegex(t *RegexTerm, title variant.Variants) (bool, error) {
	if t.Fallback() {
		return title.ContainsAny(t.literal), nil
	}
	for _, form := range title.Forms() {
		if t.re.MatchString(form) {
			return true, nil
		}
	}
	return false, nil
}

// LogFallbacks emits one warning per regex term in r that degraded to
// literal matching. Called once per parsed rule by the filtering pass so
// the degradation is observable without being an error.
func (e *Evaluator) LogFallbacks(r *Rule) {
	for _, pattern := range r.Fallbacks() {
		e.log.Warn("invalid regex in rule, matching literally",
			"pattern", pattern,
			"rule", r.Raw())
	}
}
