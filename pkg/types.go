package pkg

import "time"

// Session represents one patient interaction context.  It is keyed by a UUID
// and may group several consultations from the same visitor.
type Session struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	ClientIP  *string    `json:"client_ip,omitempty"`
	UserAgent *string    `json:"user_agent,omitempty"`
}

// ConsultationStatus describes how a consultation ended.
type ConsultationStatus string

const (
	// StatusComplete means the full six-stage pipeline ran.
	StatusComplete ConsultationStatus = "complete"
	// StatusEmergency means a red flag short-circuited the pipeline.
	StatusEmergency ConsultationStatus = "emergency"
)

// ScoreEntry is one row of the specialty score breakdown, ordered descending
// by score in RoutingResult.Breakdown.
type ScoreEntry struct {
	Specialty    string   `json:"specialty"`
	RawCount     int      `json:"raw_count"`
	KeywordCount int      `json:"keyword_count"`
	Score        float64  `json:"score"`
	Matched      []string `json:"matched,omitempty"`
}

// RoutingResult is the serializable routing decision: either an escalation
// with a red flag and action, or a specialty recommendation with confidence
// and the full score breakdown.
type RoutingResult struct {
	Escalate          bool         `json:"escalate"`
	RedFlag           string       `json:"red_flag,omitempty"`
	Urgency           string       `json:"urgency,omitempty"`
	Reason            string       `json:"reason,omitempty"`
	Action            string       `json:"action,omitempty"`
	OverrideSpecialty string       `json:"override_specialty,omitempty"`
	Specialty         string       `json:"specialty,omitempty"`
	SpecialtyDisplay  string       `json:"specialty_display,omitempty"`
	TypicalTests      []string     `json:"typical_tests,omitempty"`
	Confidence        float64      `json:"confidence"`
	Breakdown         []ScoreEntry `json:"breakdown,omitempty"`
	Rationale         string       `json:"rationale,omitempty"`
	SeeDoctor         bool         `json:"see_doctor"`
}

// PatternMatch is a wellness pattern whose indicators overlapped the query.
type PatternMatch struct {
	Name        string   `json:"name"`
	Matched     []string `json:"matched"`
	Confidence  float64  `json:"confidence"`
	Explanation string   `json:"explanation"`
	Supplement  string   `json:"supplement,omitempty"`
	Dose        string   `json:"dose,omitempty"`
	Timing      string   `json:"timing,omitempty"`
	Lifestyle   string   `json:"lifestyle,omitempty"`
	Timeline    string   `json:"timeline,omitempty"`
}

// StageResult records one pipeline stage: its narrative output plus the
// metrics the evaluation tracker collects.
type StageResult struct {
	Name       string  `json:"name"`
	Output     string  `json:"output"`
	Confidence float64 `json:"confidence"`
	ElapsedMS  int64   `json:"elapsed_ms"`
	Fallback   bool    `json:"fallback,omitempty"`
}

// Consultation is the complete output of one pipeline run.
type Consultation struct {
	ID                int64              `json:"id,omitempty"`
	SessionID         string             `json:"session_id,omitempty"`
	Query             string             `json:"query"`
	Status            ConsultationStatus `json:"status"`
	Routing           RoutingResult      `json:"routing"`
	Patterns          []PatternMatch     `json:"patterns,omitempty"`
	Stages            []StageResult      `json:"stages,omitempty"`
	OverallConfidence float64            `json:"overall_confidence"`
	Disclaimer        string             `json:"disclaimer"`
	CreatedAt         time.Time          `json:"created_at"`
}

// ConsultationPreview is returned when listing recent consultations.
type ConsultationPreview struct {
	ID         int64              `json:"id"`
	SessionID  string             `json:"session_id"`
	Query      string             `json:"query"`
	Status     ConsultationStatus `json:"status"`
	Specialty  string             `json:"specialty,omitempty"`
	Urgency    string             `json:"urgency,omitempty"`
	Confidence float64            `json:"confidence"`
	CreatedAt  time.Time          `json:"created_at"`
}

// ConsultRequest starts a consultation.  SessionID is optional; a new
// session is created when it is absent.
type ConsultRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Query     string `json:"query"`
}

// RouteRequest asks for a routing decision only, without the LLM pipeline.
type RouteRequest struct {
	Query string `json:"query"`
}
