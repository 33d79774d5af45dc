package diagfmt

import (
	"fmt"
	"strings"
)

// Format selects the diagnostics renderer.
type Format uint8

const (
	FormatPretty Format = iota
	FormatJSON
)

// ParseFormat converts a config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatPretty, fmt.Errorf("invalid diagnostics format %q (expected pretty|json)", s)
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max          int // 0 = no limit
	IncludeNotes bool
}
