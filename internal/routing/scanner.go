package routing

import "dorost/internal/knowledge"

// scan checks the query against every red flag and returns the most urgent
// match, or nil.  A flag matches when its trigger tokens are a subset of the
// query tokens, or when the trigger phrase appears contiguously in the
// normalized text -- the phrase check catches adjacency that token overlap
// alone would miss ("crushing chest pain" vs. "chest" and "pain" apart).
// Tier ties go to the lower explicit priority.  Absence of a match is the
// common case, not an error.
func (e *Engine) scan(q Query) *knowledge.RedFlag {
	var best *knowledge.RedFlag
	for _, m := range e.flags {
		if !m.matches(q) {
			continue
		}
		if best == nil || m.flag.Tier > best.Tier ||
			(m.flag.Tier == best.Tier && m.flag.Priority < best.Priority) {
			best = m.flag
		}
	}
	return best
}

func (m flagMatcher) matches(q Query) bool {
	if len(q.Tokens) == 0 {
		return false
	}
	if containsPhrase(q.Text, m.phrase) {
		return true
	}
	for t := range m.tokens {
		if !q.Has(t) {
			return false
		}
	}
	return true
}
