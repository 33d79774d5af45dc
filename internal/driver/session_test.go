package driver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"quadra/internal/config"
	"quadra/internal/diag"
	"quadra/internal/input"
	"quadra/internal/quadratic"
	"quadra/internal/render"
	"quadra/internal/trace"
)

const prompts = "Entrez la valeur de a : Entrez la valeur de b : Entrez la valeur de c : "

func runSession(t *testing.T, stdin string, mutate func(*Session)) (string, Outcome, *diag.Bag, error) {
	t.Helper()
	var out bytes.Buffer
	bag := diag.NewBag(8)
	s := &Session{
		Source:    NewPromptSource(strings.NewReader(stdin), &out),
		Out:       &out,
		Precision: render.DefaultPrecision,
		Reporter:  diag.BagReporter{Bag: bag},
	}
	if mutate != nil {
		mutate(s)
	}
	res, err := s.Run(context.Background())
	return out.String(), res, bag, err
}

func TestSessionScenarios(t *testing.T) {
	cases := []struct {
		stdin string
		want  string
	}{
		{"1\n-3\n2\n", "Deux solutions reelles : x1 = 1.00 et x2 = 2.00"},
		{"1\n2\n1\n", "Une seule solution reelle : x = -1.00"},
		{"1\n0\n1\n", "Deux solutions complexes : x1 = 0.00 - 1.00i et x2 = 0.00 + 1.00i"},
		{"0\n5\n3\n", "Ce n'est pas une equation du second degre."},
	}
	for _, tc := range cases {
		got, res, bag, err := runSession(t, tc.stdin, nil)
		if err != nil {
			t.Fatalf("Run(%q): %v", tc.stdin, err)
		}
		if want := prompts + tc.want + "\n"; got != want {
			t.Fatalf("Run(%q) output:\n%q\nwant:\n%q", tc.stdin, got, want)
		}
		if res.Line != tc.want {
			t.Fatalf("Outcome.Line = %q, want %q", res.Line, tc.want)
		}
		if bag.Len() != 0 {
			t.Fatalf("unexpected diagnostics: %+v", bag.Items())
		}
	}
}

func TestSessionSubstitutesMalformed(t *testing.T) {
	got, res, bag, err := runSession(t, "1 oops 1", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Coefficients != (quadratic.Coefficients{A: 1, B: 0, C: 1}) {
		t.Fatalf("coefficients = %+v", res.Coefficients)
	}
	if len(res.Substituted) != 1 || res.Substituted[0] != "b" {
		t.Fatalf("Substituted = %v, want [b]", res.Substituted)
	}
	if !strings.HasSuffix(got, "x1 = 0.00 - 1.00i et x2 = 0.00 + 1.00i\n") {
		t.Fatalf("output = %q", got)
	}
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %+v, want one", bag.Items())
	}
	d := bag.Items()[0]
	if d.Severity != diag.SevWarning || d.Code != diag.InputMalformed || d.Field != "b" {
		t.Fatalf("diagnostic = %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0] != "using b = 0 instead" {
		t.Fatalf("notes = %v", d.Notes)
	}
}

func TestSessionSubstitutesMissingWithDefault(t *testing.T) {
	got, res, bag, err := runSession(t, "2\n", func(s *Session) { s.Default = 1 })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Coefficients != (quadratic.Coefficients{A: 2, B: 1, C: 1}) {
		t.Fatalf("coefficients = %+v", res.Coefficients)
	}
	// all three prompts are still shown
	if !strings.HasPrefix(got, prompts) {
		t.Fatalf("output = %q", got)
	}
	if bag.Len() != 2 {
		t.Fatalf("diagnostics = %d, want 2", bag.Len())
	}
	for _, d := range bag.Items() {
		if d.Code != diag.InputMissing {
			t.Fatalf("code = %v, want InputMissing", d.Code)
		}
	}
}

func TestSessionAbortPolicy(t *testing.T) {
	got, _, bag, err := runSession(t, "1 x 3", func(s *Session) { s.Policy = config.PolicyAbort })
	var abort *AbortError
	if !errors.As(err, &abort) {
		t.Fatalf("err = %v, want *AbortError", err)
	}
	if abort.Field != "b" {
		t.Fatalf("abort field = %q, want b", abort.Field)
	}
	var fe *input.FormatError
	if !errors.As(err, &fe) || fe.Text != "x" {
		t.Fatalf("err does not wrap the FormatError: %v", err)
	}
	if got != "Entrez la valeur de a : Entrez la valeur de b : " {
		t.Fatalf("output = %q", got)
	}
	if !bag.HasErrors() {
		t.Fatal("abort should record an error diagnostic")
	}
}

func TestSessionCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Session{Source: TextSource{"a": "1"}, Out: &bytes.Buffer{}}
	_, err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSessionTextSourceAndCatalog(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		Source:    TextSource{"a": "1", "b": "-3", "c": "2"},
		Out:       &out,
		Catalog:   render.English,
		Precision: 1,
	}
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "Two real solutions: x1 = 1.0 and x2 = 2.0\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
	if res.Result.Kind() != quadratic.KindTwoReal {
		t.Fatalf("kind = %v", res.Result.Kind())
	}
}

func TestSessionIdempotent(t *testing.T) {
	first, _, _, _ := runSession(t, "3 -7.25 1.5", nil)
	second, _, _, _ := runSession(t, "3 -7.25 1.5", nil)
	if first != second {
		t.Fatalf("outputs differ:\n%q\n%q", first, second)
	}
}

func TestSessionTracesSteps(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelStep, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	s := &Session{Source: TextSource{"a": "1", "b": "bad", "c": "1"}, Out: &bytes.Buffer{}}
	if _, err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, want := range []string{"→ session", "← read:a", "• read:b", "← read:b (substituted)", "← solve {kind=complex}", "← session (complex)"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("trace missing %q:\n%s", want, buf.String())
		}
	}
}

func TestSessionTracesTokensAtDebug(t *testing.T) {
	run := func(level trace.Level) string {
		var buf bytes.Buffer
		ctx := trace.WithTracer(context.Background(), trace.NewStreamTracer(&buf, level, trace.FormatText))
		s := &Session{
			Source: NewPromptSource(strings.NewReader("1 oops \uff12"), &bytes.Buffer{}),
			Out:    &bytes.Buffer{},
		}
		if _, err := s.Run(ctx); err != nil {
			t.Fatalf("Run at %s: %v", level, err)
		}
		return buf.String()
	}

	debug := run(trace.LevelDebug)
	for _, want := range []string{
		`• token:a (raw="1" normalized="1" value=1)`,
		`• token:b (raw="oops" normalized="oops")`,
		"• token:c (raw=\"\uff12\" normalized=\"2\" value=2)",
	} {
		if !strings.Contains(debug, want) {
			t.Fatalf("debug trace missing %q:\n%s", want, debug)
		}
	}

	if step := run(trace.LevelStep); strings.Contains(step, "token:") {
		t.Fatalf("step trace has token detail:\n%s", step)
	}
}

func TestNewSession(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Lang = "en"
	cfg.Output.Precision = 3
	cfg.Input.Policy = "abort"
	s, err := NewSession(cfg, TextSource{}, &bytes.Buffer{}, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Catalog.Lang != "en" || s.Precision != 3 || s.Policy != config.PolicyAbort {
		t.Fatalf("session = %+v", s)
	}
	cfg.Output.Lang = "xx"
	if _, err := NewSession(cfg, TextSource{}, &bytes.Buffer{}, nil); err == nil {
		t.Fatal("NewSession with unknown lang succeeded")
	}
}
