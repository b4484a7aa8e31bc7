package routing

import (
	"sort"

	"dorost/internal/knowledge"
)

// scoreAll computes a coverage score per specialty: raw overlap between the
// query tokens and the specialty's keyword set, normalized by the keyword
// set size so oversized keyword lists gain no advantage.  Every specialty
// appears in the output, zero scores included, for transparency.  Ordering
// is score desc, then raw count desc, then explicit priority.
func (e *Engine) scoreAll(q Query) []ScoreEntry {
	entries := make([]ScoreEntry, 0, len(e.specs))
	for _, m := range e.specs {
		var matched []string
		for t := range m.keywords {
			if q.Has(t) {
				matched = append(matched, t)
			}
		}
		sort.Strings(matched)
		n := len(m.keywords)
		if n == 0 {
			n = 1
		}
		entries = append(entries, ScoreEntry{
			Specialty:    m.spec.Name,
			RawCount:     len(matched),
			KeywordCount: len(m.keywords),
			Score:        float64(len(matched)) / float64(n),
			Matched:      matched,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.RawCount != b.RawCount {
			return a.RawCount > b.RawCount
		}
		return e.priorityOf(a.Specialty) < e.priorityOf(b.Specialty)
	})
	return entries
}

func (e *Engine) priorityOf(name knowledge.SpecialtyName) int {
	if sp := e.store.SpecialtyByName(name); sp != nil {
		return sp.Priority
	}
	return 1 << 30
}
