package observ

import (
	"fmt"
	"io"
	"time"
)

// Step records the duration of one session step.
type Step struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the steps of a session in order.
type Timer struct {
	steps []Step
	now   func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{steps: make([]Step, 0, 8), now: time.Now} }

// Begin starts a new step and returns its index.
func (t *Timer) Begin(name string) int {
	t.steps = append(t.steps, Step{Name: name, Start: t.now()})
	return len(t.steps) - 1
}

// End finishes a step by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.steps) {
		return
	}
	s := &t.steps[idx]
	s.Dur = t.now().Sub(s.Start)
	s.Note = note
}

// StepReport is the serialisable form of a step.
type StepReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates all steps.
type Report struct {
	TotalMS float64      `json:"total_ms"`
	Steps   []StepReport `json:"steps"`
}

// Report returns the steps and their total in milliseconds.
func (t *Timer) Report() Report {
	if len(t.steps) == 0 {
		return Report{}
	}
	report := Report{Steps: make([]StepReport, len(t.steps))}
	var total time.Duration
	for i, s := range t.steps {
		total += s.Dur
		report.Steps[i] = StepReport{
			Name:       s.Name,
			DurationMS: toMillis(s.Dur),
			Note:       s.Note,
		}
	}
	report.TotalMS = toMillis(total)
	return report
}

// WriteSummary prints one line per step and a total.
func (t *Timer) WriteSummary(w io.Writer) error {
	report := t.Report()
	if _, err := fmt.Fprintln(w, "timings:"); err != nil {
		return err
	}
	for _, s := range report.Steps {
		line := fmt.Sprintf("  %-10s %8.3f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			line += "  // " + s.Note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-10s %8.3f ms\n", "total", report.TotalMS)
	return err
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
