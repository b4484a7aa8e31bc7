package routing

import (
	"sort"

	"dorost/internal/knowledge"
)

// PatternMatch is one wellness pattern whose indicators overlap the query.
type PatternMatch struct {
	Pattern    *knowledge.Pattern
	Matched    []string
	Confidence float64
}

// MatchPatterns returns the wellness patterns whose indicator keywords
// intersect the query tokens, strongest first, capped at max (<=0 means a
// default of five).  Confidence is the share of a pattern's indicators seen
// in the query.  Patterns inform the recommendation stage only; they never
// influence the routing decision itself.
func (e *Engine) MatchPatterns(q Query, max int) []PatternMatch {
	if max <= 0 {
		max = 5
	}
	var out []PatternMatch
	for _, m := range e.patterns {
		var matched []string
		for t := range m.indicators {
			if q.Has(t) {
				matched = append(matched, t)
			}
		}
		if len(matched) == 0 {
			continue
		}
		sort.Strings(matched)
		out = append(out, PatternMatch{
			Pattern:    m.pattern,
			Matched:    matched,
			Confidence: float64(len(matched)) / float64(len(m.indicators)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if len(a.Matched) != len(b.Matched) {
			return len(a.Matched) > len(b.Matched)
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return a.Pattern.Name < b.Pattern.Name
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}
