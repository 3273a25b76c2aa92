package sieve

import (
	"github.com/junyuh/titlesift/internal/logging"
	"github.com/junyuh/titlesift/internal/rule"
	"github.com/junyuh/titlesift/internal/variant"
)

// Candidate is one row of the listing: an opaque handle the caller uses to
// show or hide the row, and the title text judged by the rule. Candidates
// are immutable once observed.
type Candidate struct {
	Handle string
	Title  string
}

// Decision is the visibility verdict for one candidate. FilterAll returns
// decisions in candidate order so callers can write results back without
// reordering rows.
type Decision struct {
	Handle  string
	Visible bool
}

// Sieve applies rules to candidate listings. The converter is shared
// across passes (conversion instances are expensive to build); everything
// else is per-pass state.
type Sieve struct {
	conv variant.Converter
	log  *logging.Logger
}

// New creates a Sieve using the given converter for script variants.
// log may be nil.
func New(conv variant.Converter, log *logging.Logger) *Sieve {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Sieve{conv: conv, log: log}
}

// FilterAll parses raw once and evaluates it against every candidate
// independently, returning one Decision per candidate in input order.
// An empty or whitespace-only rule marks every candidate visible. The only
// error is a conversion failure, which aborts the pass: without variant
// forms no candidate can be safely judged.
func (s *Sieve) FilterAll(raw string, candidates []Candidate) ([]Decision, error) {
	r := rule.Parse(raw)

	// One conversion memo per pass, shared by rule terms and titles.
	conv := newMemoConverter(s.conv)
	ev := rule.NewEvaluator(variant.NewNormalizer(conv), s.log)
	ev.LogFallbacks(r)

	decisions := make([]Decision, 0, len(candidates))
	for _, c := range candidates {
		ok, err := ev.Matches(r, c.Title)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, Decision{Handle: c.Handle, Visible: ok})
	}

	s.log.Debug("filtering pass complete",
		"rule", raw,
		"candidates", len(candidates),
		"visible", countVisible(decisions))
	return decisions, nil
}

func countVisible(decisions []Decision) int {
	n := 0
	for _, d := range decisions {
		if d.Visible {
			n++
		}
	}
	return n
}

// memoConverter caches both conversion directions by input string for the
// duration of one filtering pass. Rule terms repeat across candidates and
// listings repeat titles rarely, but the memo makes both free to repeat.
type memoConverter struct {
	conv variant.Converter
	simp map[string]string
	trad map[string]string
}

func newMemoConverter(conv variant.Converter) *memoConverter {
	return &memoConverter{
		conv: conv,
		simp: make(map[string]string),
		trad: make(map[string]string),
	}
}

func (m *memoConverter) ToSimplified(text string) (string, error) {
	if out, ok := m.simp[text]; ok {
		return out, nil
	}
	out, err := m.conv.ToSimplified(text)
	if err != nil {
		return "", err
	}
	m.simp[text] = out
	return out, nil
}

func (m *memoConverter) ToTraditional(text string) (string, error) {
	if out, ok := m.trad[text]; ok {
		return out, nil
	}
	out, err := m.conv.ToTraditional(text)
	if err != nil {
		return "", err
	}
	m.trad[text] = out
	return out, nil
}
