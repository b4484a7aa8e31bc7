package routing

import (
	"fmt"
	"strings"

	"dorost/internal/knowledge"
)

// Engine routes free-text symptom descriptions to a specialty or an
// escalation.  It precomputes normalized keyword sets from an immutable
// knowledge store at construction and is safe for concurrent use: Route
// allocates per call and never mutates engine state.
type Engine struct {
	store    *knowledge.Store
	specs    []specMatcher
	flags    []flagMatcher
	patterns []patternMatcher
}

type specMatcher struct {
	spec     *knowledge.Specialty
	keywords map[string]struct{}
}

type flagMatcher struct {
	flag   *knowledge.RedFlag
	tokens map[string]struct{}
	phrase string
}

type patternMatcher struct {
	pattern    *knowledge.Pattern
	indicators map[string]struct{}
}

// NewEngine builds an Engine from the store, normalizing every specialty
// keyword, red-flag trigger and pattern indicator with the same rules used
// on queries.  Tables that normalize away to nothing are a configuration
// error; nothing is validated after startup.
func NewEngine(store *knowledge.Store) (*Engine, error) {
	e := &Engine{store: store}
	for i := range store.Specialties {
		sp := &store.Specialties[i]
		kw := tokenSet(sp.Keywords)
		if len(kw) == 0 {
			return nil, fmt.Errorf("specialty %q: keywords normalize to an empty set", sp.Name)
		}
		e.specs = append(e.specs, specMatcher{spec: sp, keywords: kw})
	}
	for i := range store.RedFlags {
		f := &store.RedFlags[i]
		q := Normalize(f.Trigger)
		if len(q.Tokens) == 0 {
			return nil, fmt.Errorf("red flag %q: trigger normalizes to an empty set", f.Trigger)
		}
		e.flags = append(e.flags, flagMatcher{flag: f, tokens: q.Tokens, phrase: q.Text})
	}
	for i := range store.Patterns {
		p := &store.Patterns[i]
		ind := tokenSet(p.Indicators)
		if len(ind) == 0 {
			return nil, fmt.Errorf("pattern %q: indicators normalize to an empty set", p.Name)
		}
		e.patterns = append(e.patterns, patternMatcher{pattern: p, indicators: ind})
	}
	return e, nil
}

func tokenSet(words []string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range words {
		for t := range Normalize(w).Tokens {
			out[t] = struct{}{}
		}
	}
	return out
}

// Store returns the knowledge snapshot the engine routes against.
func (e *Engine) Store() *knowledge.Store { return e.store }

// ScoreEntry is one row of the score breakdown.
type ScoreEntry struct {
	Specialty    knowledge.SpecialtyName
	RawCount     int
	KeywordCount int
	Score        float64
	Matched      []string
}

// Decision is the single structured output of the router.  It is immutable
// once returned; ownership passes entirely to the caller.
type Decision struct {
	Escalate   bool
	RedFlag    *knowledge.RedFlag
	Specialty  *knowledge.Specialty
	Override   *knowledge.Specialty
	Confidence float64
	Breakdown  []ScoreEntry
	Rationale  string
}

// Route runs one pass: normalize, scan red flags, then score specialties.
// The red-flag scan is a safety gate and always runs first; a match fixes
// confidence at 1.0 and skips scoring.  Routing is total: every input,
// including empty text, produces a Decision.
func (e *Engine) Route(raw string) Decision {
	q := Normalize(raw)

	if f := e.scan(q); f != nil {
		d := Decision{
			Escalate:   true,
			RedFlag:    f,
			Confidence: 1.0,
			Rationale:  fmt.Sprintf("red flag %q (%s): %s", f.Trigger, f.Tier, f.Reason),
		}
		if f.Specialty != "" {
			d.Override = e.store.SpecialtyByName(f.Specialty)
		}
		return d
	}

	breakdown := e.scoreAll(q)
	d := Decision{Breakdown: breakdown}
	if len(breakdown) == 0 || breakdown[0].RawCount == 0 {
		// A zero-overlap query must not fabricate a recommendation.
		d.Rationale = "no symptom keywords matched any specialty"
		return d
	}
	top := breakdown[0]
	d.Specialty = e.store.SpecialtyByName(top.Specialty)
	d.Confidence = top.Score
	d.Rationale = fmt.Sprintf("symptoms mention %s, matching %d of %d %s keywords",
		strings.Join(top.Matched, ", "), top.RawCount, top.KeywordCount, d.Specialty.DisplayName)
	return d
}
