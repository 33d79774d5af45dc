// Package input reads real coefficients from a text stream.
//
// Tokens are separated by Unicode white space and may span lines, the way
// scanf("%lf") consumes its input. A read either yields a float64 or a
// *FormatError; the package never substitutes a value on its own.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxTokenSize bounds a single token. Longer input is rejected instead of
// buffered.
const MaxTokenSize = 4096

var (
	// ErrMissing reports that the stream ended before a value was read.
	ErrMissing = errors.New("no value before end of input")
	// ErrTooLong reports a token longer than MaxTokenSize bytes.
	ErrTooLong = fmt.Errorf("value longer than %d bytes", MaxTokenSize)
)

// FormatError describes a failed read for one coefficient.
type FormatError struct {
	Field string
	Text  string // raw token, empty when input ended
	Err   error
}

func (e *FormatError) Error() string {
	return e.Field + ": " + e.Reason()
}

// Reason is the message without the field prefix.
func (e *FormatError) Reason() string {
	if errors.Is(e.Err, ErrMissing) || errors.Is(e.Err, ErrTooLong) {
		return e.Err.Error()
	}
	return fmt.Sprintf("cannot parse %q as a real number: %v", e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Reader yields one float per call.
type Reader struct {
	sc *bufio.Scanner
	// set once the scanner reported an overlong token; it cannot resume
	stopped bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64), MaxTokenSize)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// Token consumes the next raw token for field.
// An overlong token is reported once as ErrTooLong; the stream counts as
// ended afterwards.
func (r *Reader) Token(field string) (string, error) {
	if r.stopped {
		return "", &FormatError{Field: field, Err: ErrMissing}
	}
	if !r.sc.Scan() {
		err := r.sc.Err()
		switch {
		case err == nil:
			err = ErrMissing
		case errors.Is(err, bufio.ErrTooLong):
			r.stopped = true
			err = ErrTooLong
		default:
			err = fmt.Errorf("%w: %w", ErrMissing, err)
		}
		return "", &FormatError{Field: field, Err: err}
	}
	return r.sc.Text(), nil
}

// ReadFloat consumes the next token and parses it for field.
// A malformed token is consumed too, so the next call sees fresh input.
func (r *Reader) ReadFloat(field string) (float64, error) {
	tok, err := r.Token(field)
	if err != nil {
		return 0, err
	}
	return ParseFloat(field, tok)
}

// Normalize folds full-width digits and signs to ASCII and trims space.
func Normalize(text string) string {
	tok := strings.TrimSpace(norm.NFKC.String(text))
	// U+2212 MINUS SIGN survives NFKC
	return strings.ReplaceAll(tok, "−", "-")
}

// ParseFloat parses a single token. Full-width digits and signs are folded
// to ASCII before parsing, and "inf"/"nan" are accepted.
func ParseFloat(field, text string) (float64, error) {
	tok := Normalize(text)
	if tok == "" {
		return 0, &FormatError{Field: field, Text: text, Err: ErrMissing}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// out-of-range values saturate like strtod does
			return v, nil
		}
		return 0, &FormatError{Field: field, Text: text, Err: unwrapNum(err)}
	}
	return v, nil
}

func unwrapNum(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
