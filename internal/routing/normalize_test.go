package routing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokens(q Query) []string { return q.TokenList() }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
		text string
	}{
		{
			name: "empty input",
			in:   "",
			want: []string{},
			text: "",
		},
		{
			name: "whitespace only",
			in:   "   \t\n  ",
			want: []string{},
			text: "",
		},
		{
			name: "punctuation and case",
			in:   "Crushing, CHEST-pain!!",
			want: []string{"chest", "crushing", "pain"},
			text: "crushing chest pain",
		},
		{
			name: "stopwords dropped",
			in:   "I have a pain in my chest",
			want: []string{"chest", "pain"},
			text: "i have a pain in my chest",
		},
		{
			name: "duplicates removed",
			in:   "pain pain pain",
			want: []string{"pain"},
			text: "pain pain pain",
		},
		{
			name: "short tokens dropped",
			in:   "a b cd",
			want: []string{"cd"},
			text: "a b cd",
		},
		{
			name: "digits kept",
			in:   "fever of 103 degrees",
			want: []string{"103", "degrees", "fever"},
			text: "fever of 103 degrees",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Normalize(tt.in)
			if diff := cmp.Diff(tt.want, tokens(q)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if q.Text != tt.text {
				t.Errorf("text = %q, want %q", q.Text, tt.text)
			}
			if q.Raw != tt.in {
				t.Errorf("raw = %q, want %q", q.Raw, tt.in)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	const in = "Fatigue, brain fog & sugar cravings after meals!"
	a, b := Normalize(in), Normalize(in)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("normalize not deterministic (-first +second):\n%s", diff)
	}
}

func TestContainsPhrase(t *testing.T) {
	tests := []struct {
		text, phrase string
		want         bool
	}{
		{"crushing chest pain radiating to my arm", "crushing chest pain", true},
		{"chest hurts and the pain is sharp", "chest pain", false},
		{"blood in stool this morning", "blood in stool", true},
		{"pain", "pain", true},
		{"painful", "pain", false}, // word-aligned, not substring of a word
		{"", "chest pain", false},
		{"chest pain", "", false},
	}
	for _, tt := range tests {
		if got := containsPhrase(tt.text, tt.phrase); got != tt.want {
			t.Errorf("containsPhrase(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
		}
	}
}
