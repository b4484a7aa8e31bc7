package routing

import (
	"testing"

	"dorost/internal/knowledge"
)

func flagEngine(t *testing.T, flags []knowledge.RedFlag) *Engine {
	t.Helper()
	store := &knowledge.Store{
		Specialties: []knowledge.Specialty{
			{Name: knowledge.PrimaryCare, DisplayName: "Primary Care Physician",
				Keywords: []string{"fever"}, Priority: 1},
		},
		RedFlags: flags,
	}
	e, err := NewEngine(store)
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	return e
}

func TestScanHighestTierWins(t *testing.T) {
	e := flagEngine(t, []knowledge.RedFlag{
		{Trigger: "mild rash", Tier: knowledge.TierRoutine, Priority: 1},
		{Trigger: "persistent cough", Tier: knowledge.TierSoon, Priority: 2},
		{Trigger: "high fever", Tier: knowledge.TierUrgent, Priority: 3},
		{Trigger: "chest pain", Tier: knowledge.TierEmergency, Priority: 4},
	})

	tests := []struct {
		query string
		want  string
	}{
		{"mild rash and a persistent cough", "persistent cough"},
		{"persistent cough with high fever", "high fever"},
		{"high fever and chest pain and a mild rash", "chest pain"},
		{"just a mild rash", "mild rash"},
	}
	for _, tt := range tests {
		got := e.scan(Normalize(tt.query))
		if got == nil {
			t.Errorf("scan(%q) = nil, want %q", tt.query, tt.want)
			continue
		}
		if got.Trigger != tt.want {
			t.Errorf("scan(%q) = %q, want %q", tt.query, got.Trigger, tt.want)
		}
	}
}

func TestScanSameTierPriorityBreaksTie(t *testing.T) {
	e := flagEngine(t, []knowledge.RedFlag{
		{Trigger: "vomiting blood", Tier: knowledge.TierEmergency, Priority: 7},
		{Trigger: "chest pain", Tier: knowledge.TierEmergency, Priority: 1},
	})
	got := e.scan(Normalize("chest pain and vomiting blood"))
	if got == nil || got.Trigger != "chest pain" {
		t.Fatalf("scan = %+v, want chest pain (priority 1 beats 7)", got)
	}
}

func TestScanMatchModes(t *testing.T) {
	e := flagEngine(t, []knowledge.RedFlag{
		{Trigger: "blood in stool", Tier: knowledge.TierUrgent, Priority: 1},
	})

	// Token subset: order and adjacency do not matter.
	if got := e.scan(Normalize("noticed stool with some blood today")); got == nil {
		t.Error("token subset match failed")
	}
	// Contiguous phrase through the normalized text.
	if got := e.scan(Normalize("Blood in stool this morning.")); got == nil {
		t.Error("phrase match failed")
	}
	// Partial trigger must not fire.
	if got := e.scan(Normalize("blood test came back fine")); got != nil {
		t.Errorf("partial trigger fired: %+v", got)
	}
	// Empty query never matches.
	if got := e.scan(Normalize("")); got != nil {
		t.Errorf("empty query matched: %+v", got)
	}
}
