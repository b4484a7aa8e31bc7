package core

import (
	"context"
	"errors"
	"math"
	"testing"

	"dorost/internal/knowledge"
	"dorost/internal/routing"
	"dorost/pkg"
)

// stubLLM scripts Complete for pipeline tests.
type stubLLM struct {
	fn    func(system, user string) (string, error)
	calls int
}

func (s *stubLLM) Complete(_ context.Context, system, user string) (string, error) {
	s.calls++
	if s.fn == nil {
		return "stubbed stage output", nil
	}
	return s.fn(system, user)
}

func newConsultant(t *testing.T, client *stubLLM, threshold float64) *Consultant {
	t.Helper()
	store, err := knowledge.Load()
	if err != nil {
		t.Fatalf("load knowledge: %v", err)
	}
	engine, err := routing.NewEngine(store)
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	return NewConsultant(engine, client, 5, threshold)
}

func TestConsultEmergencyShortCircuit(t *testing.T) {
	stub := &stubLLM{}
	c := newConsultant(t, stub, 0.6)

	cons := c.Consult(context.Background(), "crushing chest pain radiating to my arm")

	if cons.Status != pkg.StatusEmergency {
		t.Fatalf("status = %s, want emergency", cons.Status)
	}
	if stub.calls != 0 {
		t.Errorf("escalation must not call the model, got %d calls", stub.calls)
	}
	if len(cons.Stages) != 1 || cons.Stages[0].Name != StageEscalation {
		t.Fatalf("stages = %+v, want single escalation stage", cons.Stages)
	}
	if cons.OverallConfidence != 1.0 {
		t.Errorf("overall confidence = %g, want 1.0", cons.OverallConfidence)
	}
	if !cons.Routing.SeeDoctor {
		t.Error("escalation must advise seeing a doctor")
	}
	if cons.Routing.Action == "" || cons.Stages[0].Output == "" {
		t.Error("escalation must carry the red flag action")
	}
	if cons.Disclaimer == "" {
		t.Error("disclaimer missing")
	}
}

func TestConsultFullPipeline(t *testing.T) {
	stub := &stubLLM{fn: func(system, user string) (string, error) {
		return "narrative for: " + user[:20], nil
	}}
	c := newConsultant(t, stub, 0.6)

	cons := c.Consult(context.Background(), "fatigue and sugar cravings after meals")

	if cons.Status != pkg.StatusComplete {
		t.Fatalf("status = %s, want complete", cons.Status)
	}
	if stub.calls != 5 {
		t.Errorf("model calls = %d, want 5 (router stage is deterministic)", stub.calls)
	}

	wantOrder := []string{StageIntake, StageDiagnostic, StageRouter, StageKnowledge, StageRootCause, StageRecommender}
	if len(cons.Stages) != len(wantOrder) {
		t.Fatalf("stages = %d, want %d", len(cons.Stages), len(wantOrder))
	}
	for i, name := range wantOrder {
		if cons.Stages[i].Name != name {
			t.Errorf("stage[%d] = %s, want %s", i, cons.Stages[i].Name, name)
		}
		if cons.Stages[i].Fallback {
			t.Errorf("stage %s unexpectedly fell back", name)
		}
	}

	if cons.Routing.Specialty != string(knowledge.Endocrinologist) {
		t.Errorf("specialty = %s, want endocrinologist", cons.Routing.Specialty)
	}
	if len(cons.Patterns) == 0 || cons.Patterns[0].Name != "Insulin Resistance" {
		t.Errorf("patterns = %+v, want Insulin Resistance first", cons.Patterns)
	}

	// Overall confidence is the stage average: five model stages at their
	// baselines plus the router stage at routing confidence.
	want := (0.90 + 0.85 + cons.Routing.Confidence + 0.88 + 0.82 + 0.85) / 6
	if math.Abs(cons.OverallConfidence-want) > 1e-9 {
		t.Errorf("overall confidence = %g, want %g", cons.OverallConfidence, want)
	}
}

func TestConsultDegradesOnModelFailure(t *testing.T) {
	stub := &stubLLM{fn: func(string, string) (string, error) {
		return "", errors.New("rate limited")
	}}
	c := newConsultant(t, stub, 0.6)

	cons := c.Consult(context.Background(), "fatigue and sugar cravings after meals")

	if cons.Status != pkg.StatusComplete {
		t.Fatalf("status = %s, want complete despite model failure", cons.Status)
	}
	for _, st := range cons.Stages {
		if st.Name == StageRouter {
			if st.Fallback {
				t.Error("deterministic router stage cannot fall back")
			}
			continue
		}
		if !st.Fallback {
			t.Errorf("stage %s did not fall back", st.Name)
		}
		if st.Output == "" {
			t.Errorf("stage %s fallback output empty", st.Name)
		}
		if st.Confidence != fallbackConfidence {
			t.Errorf("stage %s confidence = %g, want %g", st.Name, st.Confidence, fallbackConfidence)
		}
	}
}

func TestConsultEmptyCompletionFallsBack(t *testing.T) {
	stub := &stubLLM{fn: func(string, string) (string, error) {
		return "   \n", nil
	}}
	c := newConsultant(t, stub, 0.6)

	cons := c.Consult(context.Background(), "rash with itching skin")
	if !cons.Stages[0].Fallback {
		t.Error("blank completion must degrade to the stage fallback")
	}
}

func TestRouteSeeDoctorThreshold(t *testing.T) {
	// Endocrinologist coverage for this query is 4 of 20 keywords = 0.2.
	const query = "fatigue and sugar cravings after meals"

	low := newConsultant(t, &stubLLM{}, 0.1)
	if res := low.Route(query); res.SeeDoctor {
		t.Errorf("confidence %g above threshold 0.1 should not flag see_doctor", res.Confidence)
	}
	high := newConsultant(t, &stubLLM{}, 0.6)
	if res := high.Route(query); !res.SeeDoctor {
		t.Errorf("confidence %g below threshold 0.6 should flag see_doctor", res.Confidence)
	}
}

func TestRouteZeroOverlapResult(t *testing.T) {
	c := newConsultant(t, &stubLLM{}, 0.6)
	res := c.Route("purple unicorn dreams")

	if res.Escalate || res.Specialty != "" {
		t.Fatalf("zero-overlap query produced a recommendation: %+v", res)
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %g, want 0", res.Confidence)
	}
	if !res.SeeDoctor {
		t.Error("unroutable query should still advise professional evaluation")
	}
	if len(res.Breakdown) != 9 {
		t.Errorf("breakdown = %d entries, want all 9 specialties", len(res.Breakdown))
	}
}
