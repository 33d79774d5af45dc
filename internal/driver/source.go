package driver

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"quadra/internal/input"
	"quadra/internal/trace"
)

// Source supplies one coefficient per call.
type Source interface {
	Next(ctx context.Context, field, prompt string) (float64, error)
}

// PromptSource writes the prompt to Out and reads the answer from In,
// the classic terminal protocol.
type PromptSource struct {
	Out io.Writer
	r   *input.Reader
}

// NewPromptSource reads tokens from in.
func NewPromptSource(in io.Reader, out io.Writer) *PromptSource {
	return &PromptSource{Out: out, r: input.NewReader(in)}
}

func (s *PromptSource) Next(ctx context.Context, field, prompt string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if _, err := io.WriteString(s.Out, prompt); err != nil {
		return 0, fmt.Errorf("write prompt: %w", err)
	}
	tok, err := s.r.Token(field)
	if err != nil {
		return 0, err
	}
	return parseTraced(ctx, field, tok)
}

// TextSource parses answers that were collected beforehand, e.g. by the
// interactive form. Missing fields read as end of input.
type TextSource map[string]string

func (s TextSource) Next(ctx context.Context, field, _ string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	text, ok := s[field]
	if !ok {
		return 0, &input.FormatError{Field: field, Err: input.ErrMissing}
	}
	return parseTraced(ctx, field, text)
}

// parseTraced parses one token and records it at debug level.
func parseTraced(ctx context.Context, field, tok string) (float64, error) {
	v, err := input.ParseFloat(field, tok)
	tr := trace.FromContext(ctx)
	if tr.Level().ShouldEmit(trace.ScopeDetail) {
		detail := fmt.Sprintf("raw=%q normalized=%q", tok, input.Normalize(tok))
		if err == nil {
			detail += " value=" + strconv.FormatFloat(v, 'g', -1, 64)
		}
		trace.Point(tr, trace.ScopeDetail, "token:"+field, detail, trace.CurrentSpan(ctx))
	}
	return v, err
}
