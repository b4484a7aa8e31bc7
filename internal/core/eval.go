package core

import (
	"log"
	"time"
)

// StageMetric captures one stage execution for pipeline evaluation.
type StageMetric struct {
	Stage        string
	Elapsed      time.Duration
	InputLength  int
	OutputLength int
	Confidence   float64
	Success      bool
}

// Tracker accumulates per-stage metrics for a single consultation run and
// can summarize them.  It is not safe for concurrent use; each Run allocates
// its own tracker.
type Tracker struct {
	started time.Time
	metrics []StageMetric
}

func newTracker() *Tracker {
	return &Tracker{started: time.Now()}
}

// Record appends one stage execution.
func (t *Tracker) Record(m StageMetric) {
	t.metrics = append(t.metrics, m)
}

// AverageConfidence is the mean confidence across recorded stages, or zero
// when nothing was recorded.
func (t *Tracker) AverageConfidence() float64 {
	if len(t.metrics) == 0 {
		return 0
	}
	var sum float64
	for _, m := range t.metrics {
		sum += m.Confidence
	}
	return sum / float64(len(t.metrics))
}

// LogSummary writes a one-line pipeline summary.
func (t *Tracker) LogSummary() {
	failures := 0
	for _, m := range t.metrics {
		if !m.Success {
			failures++
		}
	}
	log.Printf("pipeline done: stages=%d failures=%d avg_confidence=%.2f total=%s",
		len(t.metrics), failures, t.AverageConfidence(), time.Since(t.started).Round(time.Millisecond))
}
