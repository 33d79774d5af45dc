package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"quadra/internal/diag"
)

// Pretty renders diagnostics one per line:
//
//	<SEV> <CODE> <field>: <Message>
//	    note: <text>
//
// The bag is expected to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, opts PrettyOpts) error {
	sev := severityColor(d.Severity)
	code := color.New(color.Faint)
	field := color.New(color.Bold)
	for _, c := range []*color.Color{sev, code, field} {
		// override color.NoColor, which follows the process stdout
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	prefix := sev.Sprint(d.Severity.String()) + " " + code.Sprint(d.Code.ID())
	var err error
	if d.Field != "" {
		_, err = fmt.Fprintf(w, "%s %s: %s\n", prefix, field.Sprint(d.Field), d.Message)
	} else {
		_, err = fmt.Fprintf(w, "%s: %s\n", prefix, d.Message)
	}
	if err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, note := range d.Notes {
		if _, err := fmt.Fprintf(w, "    note: %s\n", note); err != nil {
			return err
		}
	}
	return nil
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
