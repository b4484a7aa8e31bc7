package core

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"dorost/internal/llm"
	"dorost/internal/routing"
	"dorost/pkg"
)

// Stage names, in pipeline order.
const (
	StageIntake      = "intake"
	StageDiagnostic  = "diagnostic"
	StageRouter      = "specialty_router"
	StageKnowledge   = "knowledge"
	StageRootCause   = "root_cause"
	StageRecommender = "recommender"
	StageEscalation  = "escalation"
)

// Per-stage baseline confidences for successful LLM stages; a fallback
// answer drops to fallbackConfidence.
var stageConfidence = map[string]float64{
	StageIntake:      0.90,
	StageDiagnostic:  0.85,
	StageKnowledge:   0.88,
	StageRootCause:   0.82,
	StageRecommender: 0.85,
}

const fallbackConfidence = 0.3

// Consultant runs the six-stage consultation pipeline: intake, diagnostic
// guidance, deterministic specialty routing, knowledge analysis, root cause
// analysis and recommendations.  A red-flag match short-circuits the whole
// pipeline before any model call.
type Consultant struct {
	engine      *routing.Engine
	llm         llm.Client
	maxPatterns int
	// threshold below which the result advises professional evaluation even
	// when a specialty was matched.
	threshold float64
}

// NewConsultant constructs a Consultant.
func NewConsultant(engine *routing.Engine, client llm.Client, maxPatterns int, threshold float64) *Consultant {
	if threshold <= 0 {
		threshold = 0.6
	}
	return &Consultant{engine: engine, llm: client, maxPatterns: maxPatterns, threshold: threshold}
}

// Route returns the routing decision alone, without running the pipeline.
func (c *Consultant) Route(query string) pkg.RoutingResult {
	return c.toResult(c.engine.Route(query))
}

// Consult runs a full consultation.  It always returns a result: routing is
// total, and LLM failures degrade individual stages to safe fallbacks rather
// than aborting.  The safety gate runs first, so an escalation can never be
// lost to a failure in a later stage.
func (c *Consultant) Consult(ctx context.Context, query string) *pkg.Consultation {
	tracker := newTracker()
	decision := c.engine.Route(query)

	cons := &pkg.Consultation{
		Query:      query,
		Routing:    c.toResult(decision),
		Disclaimer: Disclaimer,
		CreatedAt:  time.Now().UTC(),
	}

	if decision.Escalate {
		cons.Status = pkg.StatusEmergency
		cons.OverallConfidence = 1.0
		out := decision.RedFlag.Action
		if decision.Override != nil {
			out += fmt.Sprintf(" The likely underlying specialty is %s, but emergency care comes first.",
				decision.Override.DisplayName)
		}
		cons.Stages = []pkg.StageResult{{
			Name:       StageEscalation,
			Output:     out,
			Confidence: 1.0,
		}}
		log.Printf("consultation escalated: tier=%s flag=%q", decision.RedFlag.Tier, decision.RedFlag.Trigger)
		return cons
	}

	q := routing.Normalize(query)
	cons.Patterns = toPatterns(c.engine.MatchPatterns(q, c.maxPatterns))

	intake := c.runStage(ctx, tracker, StageIntake, IntakePrompt, query, fallbackIntake)
	diagnostic := c.runStage(ctx, tracker, StageDiagnostic, DiagnosticPrompt,
		stageContext(query, "Intake summary", intake.Output), fallbackDiagnostic)

	// Routing is deterministic and already decided; record it as a stage so
	// the transcript shows the full six steps.
	router := pkg.StageResult{
		Name:       StageRouter,
		Output:     cons.Routing.Rationale,
		Confidence: cons.Routing.Confidence,
	}
	tracker.Record(StageMetric{Stage: StageRouter, Confidence: router.Confidence, Success: true})

	knowledge := c.runStage(ctx, tracker, StageKnowledge, KnowledgePrompt,
		c.knowledgeContext(query, intake.Output, cons), fallbackKnowledge)
	rootCause := c.runStage(ctx, tracker, StageRootCause, RootCausePrompt,
		stageContext(query, "Knowledge analysis", knowledge.Output), fallbackRootCause)
	recommender := c.runStage(ctx, tracker, StageRecommender, RecommenderPrompt,
		c.recommenderContext(query, rootCause.Output, cons), fallbackRecommender)

	cons.Stages = []pkg.StageResult{intake, diagnostic, router, knowledge, rootCause, recommender}
	cons.Status = pkg.StatusComplete
	cons.OverallConfidence = tracker.AverageConfidence()
	tracker.LogSummary()
	return cons
}

// runStage executes one LLM stage, degrading to the stage fallback on error
// or an empty completion.
func (c *Consultant) runStage(ctx context.Context, tracker *Tracker, name, system, user, fallback string) pkg.StageResult {
	start := time.Now()
	out, err := c.llm.Complete(ctx, system, user)
	elapsed := time.Since(start)

	res := pkg.StageResult{
		Name:       name,
		Confidence: stageConfidence[name],
		ElapsedMS:  elapsed.Milliseconds(),
	}
	success := true
	if trimmed := strings.TrimSpace(out); err == nil && trimmed != "" {
		res.Output = trimmed
	} else {
		if err != nil {
			log.Printf("stage %s: llm error: %v", name, err)
		}
		res.Output = fallback
		res.Confidence = fallbackConfidence
		res.Fallback = true
		success = false
	}
	tracker.Record(StageMetric{
		Stage:        name,
		Elapsed:      elapsed,
		InputLength:  len(user),
		OutputLength: len(res.Output),
		Confidence:   res.Confidence,
		Success:      success,
	})
	return res
}

func stageContext(query, label, previous string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Patient description: %s\n", query)
	if previous != "" {
		fmt.Fprintf(&b, "\n%s:\n%s\n", label, previous)
	}
	return b.String()
}

func (c *Consultant) knowledgeContext(query, intake string, cons *pkg.Consultation) string {
	var b strings.Builder
	b.WriteString(stageContext(query, "Intake summary", intake))
	if cons.Routing.Specialty != "" {
		fmt.Fprintf(&b, "\nRecommended specialty: %s (confidence %.2f)\n",
			cons.Routing.SpecialtyDisplay, cons.Routing.Confidence)
	}
	if len(cons.Patterns) > 0 {
		b.WriteString("\nMatched wellness patterns:\n")
		for _, p := range cons.Patterns {
			fmt.Fprintf(&b, "- %s (%.0f%% of indicators): %s\n", p.Name, p.Confidence*100,
				strings.Join(p.Matched, ", "))
		}
	}
	return b.String()
}

func (c *Consultant) recommenderContext(query, rootCause string, cons *pkg.Consultation) string {
	var b strings.Builder
	b.WriteString(stageContext(query, "Root cause analysis", rootCause))
	if cons.Routing.Specialty != "" {
		fmt.Fprintf(&b, "\nSpecialist to mention: %s.", cons.Routing.SpecialtyDisplay)
		if len(cons.Routing.TypicalTests) > 0 {
			fmt.Fprintf(&b, " Typical tests: %s.", strings.Join(cons.Routing.TypicalTests, "; "))
		}
		b.WriteString("\n")
	}
	for _, p := range cons.Patterns {
		if p.Supplement == "" {
			continue
		}
		fmt.Fprintf(&b, "Candidate support for %s: %s %s, %s. %s\n",
			p.Name, p.Supplement, p.Dose, p.Timing, p.Lifestyle)
	}
	return b.String()
}

// toResult flattens a routing decision into the serializable API shape.
func (c *Consultant) toResult(d routing.Decision) pkg.RoutingResult {
	out := pkg.RoutingResult{
		Escalate:   d.Escalate,
		Confidence: d.Confidence,
		Rationale:  d.Rationale,
	}
	if d.RedFlag != nil {
		out.RedFlag = d.RedFlag.Trigger
		out.Urgency = d.RedFlag.Tier.String()
		out.Reason = d.RedFlag.Reason
		out.Action = d.RedFlag.Action
	}
	if d.Override != nil {
		out.OverrideSpecialty = string(d.Override.Name)
	}
	if d.Specialty != nil {
		out.Specialty = string(d.Specialty.Name)
		out.SpecialtyDisplay = d.Specialty.DisplayName
		out.TypicalTests = d.Specialty.TypicalTests
	}
	for _, e := range d.Breakdown {
		out.Breakdown = append(out.Breakdown, pkg.ScoreEntry{
			Specialty:    string(e.Specialty),
			RawCount:     e.RawCount,
			KeywordCount: e.KeywordCount,
			Score:        e.Score,
			Matched:      e.Matched,
		})
	}
	out.SeeDoctor = d.Escalate || d.Confidence < c.threshold
	return out
}

func toPatterns(matches []routing.PatternMatch) []pkg.PatternMatch {
	out := make([]pkg.PatternMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, pkg.PatternMatch{
			Name:        m.Pattern.Name,
			Matched:     m.Matched,
			Confidence:  m.Confidence,
			Explanation: m.Pattern.Explanation,
			Supplement:  m.Pattern.Recommendation.Supplement,
			Dose:        m.Pattern.Recommendation.Dose,
			Timing:      m.Pattern.Recommendation.Timing,
			Lifestyle:   m.Pattern.Recommendation.Lifestyle,
			Timeline:    m.Pattern.Timeline,
		})
	}
	return out
}
