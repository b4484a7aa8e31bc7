package routing

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords are articles, pronouns and connectors that carry no routing
// signal.  Dropping them keeps specialty keywords from competing with the
// glue words around them.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a an the and or but if then than so as of to in on at by for with " +
			"from into about after before during over under again once " +
			"i me my mine we us our ours you your yours he him his she her hers " +
			"it its they them their theirs am is are was were be been being " +
			"have has had having do does did doing this that these those there " +
			"here when where why how what which who whom will would can could " +
			"should shall may might must not no nor very too also just") {
		stopwords[w] = struct{}{}
	}
}

// Query is one normalization pass over raw symptom text: the raw input, an
// order-preserving normalized text (for contiguous phrase matching) and a
// deduplicated token set.  It lives for a single routing request.
type Query struct {
	Raw    string
	Text   string
	Tokens map[string]struct{}
}

// Has reports whether the query contains the given normalized token.
func (q Query) Has(token string) bool {
	_, ok := q.Tokens[token]
	return ok
}

// TokenList returns the tokens in sorted order for deterministic output.
func (q Query) TokenList() []string {
	out := make([]string, 0, len(q.Tokens))
	for t := range q.Tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Normalize lowercases the input, splits on punctuation boundaries, drops
// short tokens and stopwords, and deduplicates.  It is pure and total: empty
// or whitespace-only input yields an empty token set, never an error.
func Normalize(raw string) Query {
	text := normalizeText(raw)
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(text) {
		if len(tok) < 2 {
			continue
		}
		if _, skip := stopwords[tok]; skip {
			continue
		}
		tokens[tok] = struct{}{}
	}
	return Query{Raw: raw, Text: text, Tokens: tokens}
}

// normalizeText lowercases and replaces every non-alphanumeric rune with a
// space, collapsing runs.  Word order is preserved so multi-word red-flag
// phrases can be matched contiguously.
func normalizeText(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	lastSpace := true
	for _, r := range strings.ToLower(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// containsPhrase reports whether phrase occurs as a contiguous, word-aligned
// substring of text.  Both arguments must already be normalized.
func containsPhrase(text, phrase string) bool {
	if phrase == "" || text == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}
