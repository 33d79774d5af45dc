// Package driver runs one read-solve-print session.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"quadra/internal/config"
	"quadra/internal/diag"
	"quadra/internal/input"
	"quadra/internal/observ"
	"quadra/internal/quadratic"
	"quadra/internal/render"
	"quadra/internal/trace"
)

// Fields are the coefficient names in prompt order.
var Fields = [3]string{"a", "b", "c"}

// Session holds everything one run needs. Zero values of Policy, Catalog
// and Reporter mean substitute, French and no diagnostics.
type Session struct {
	Source    Source
	Out       io.Writer
	Catalog   render.Catalog
	Precision int
	Policy    config.Policy
	Default   float64
	Reporter  diag.Reporter
	Timer     *observ.Timer
}

// Outcome is what a session computed.
type Outcome struct {
	Coefficients quadratic.Coefficients
	Result       quadratic.Result
	Line         string
	Substituted  []string // fields that fell back to the default
}

// AbortError is returned when a read fails under the abort policy.
type AbortError struct {
	Field string
	Err   error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Field, e.Err)
}

func (e *AbortError) Unwrap() error { return e.Err }

// NewSession builds a session from a validated config.
func NewSession(cfg config.Config, src Source, out io.Writer, rep diag.Reporter) (*Session, error) {
	cat, err := render.Lookup(cfg.Output.Lang)
	if err != nil {
		return nil, err
	}
	digits, err := cfg.Digits()
	if err != nil {
		return nil, err
	}
	return &Session{
		Source:    src,
		Out:       out,
		Catalog:   cat,
		Precision: int(digits),
		Policy:    cfg.InputPolicy(),
		Default:   cfg.Input.Default,
		Reporter:  rep,
	}, nil
}

// Run prompts for a, b and c, solves and prints one line to Out.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	s.defaults()
	tr := trace.FromContext(ctx)
	root := trace.Begin(tr, trace.ScopeSession, "session", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, root)

	var out Outcome
	var values [3]float64
	idx := s.Timer.Begin("read")
	for i, field := range Fields {
		v, substituted, err := s.readField(ctx, field)
		if err != nil {
			s.Timer.End(idx, "aborted")
			root.End("aborted")
			return out, err
		}
		if substituted {
			out.Substituted = append(out.Substituted, field)
		}
		values[i] = v
	}
	s.Timer.End(idx, "")
	out.Coefficients = quadratic.Coefficients{A: values[0], B: values[1], C: values[2]}

	idx = s.Timer.Begin("solve")
	span := trace.Begin(tr, trace.ScopeStep, "solve", root.ID())
	out.Result = quadratic.Solve(out.Coefficients)
	span.WithExtra("kind", out.Result.Kind().String()).End("")
	s.Timer.End(idx, out.Result.Kind().String())

	idx = s.Timer.Begin("render")
	span = trace.Begin(tr, trace.ScopeStep, "render", root.ID())
	out.Line = render.Format(out.Result, s.Catalog, s.Precision)
	_, err := fmt.Fprintln(s.Out, out.Line)
	span.End(s.Catalog.Lang)
	s.Timer.End(idx, s.Catalog.Lang)
	if err != nil {
		root.End("write failed")
		return out, fmt.Errorf("write result: %w", err)
	}

	root.End(out.Result.Kind().String())
	return out, nil
}

func (s *Session) defaults() {
	if s.Catalog.Prompt == "" {
		s.Catalog = render.French
	}
	if s.Policy == "" {
		s.Policy = config.PolicySubstitute
	}
	if s.Reporter == nil {
		s.Reporter = diag.NopReporter{}
	}
	if s.Timer == nil {
		s.Timer = observ.NewTimer()
	}
}

// readField returns the value for field and whether it was substituted.
func (s *Session) readField(ctx context.Context, field string) (float64, bool, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeStep, "read:"+field, trace.CurrentSpan(ctx))

	v, err := s.Source.Next(trace.WithSpan(ctx, span), field, s.Catalog.PromptFor(field))
	if err == nil {
		span.WithExtra("value", strconv.FormatFloat(v, 'g', -1, 64)).End("")
		return v, false, nil
	}

	var fe *input.FormatError
	if !errors.As(err, &fe) {
		// context cancelled or the prompt could not be written
		span.End("failed")
		return 0, false, err
	}

	code, msg := diag.InputMalformed, fe.Reason()
	if errors.Is(err, input.ErrMissing) {
		code = diag.InputMissing
	}
	trace.Point(tr, trace.ScopeFailure, "read:"+field, msg, span.ID())

	if s.Policy == config.PolicyAbort {
		diag.ReportError(s.Reporter, code, field, msg).Emit()
		span.End("aborted")
		return 0, false, &AbortError{Field: field, Err: err}
	}

	diag.ReportWarning(s.Reporter, code, field, msg).
		WithNote(fmt.Sprintf("using %s = %s instead", field, strconv.FormatFloat(s.Default, 'g', -1, 64))).
		Emit()
	span.End("substituted")
	return s.Default, true, nil
}
