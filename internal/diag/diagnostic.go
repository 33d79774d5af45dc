package diag

type Diagnostic struct {
	Severity Severity
	Code     Code
	Field    string
	Message  string
	Notes    []string
}

// New builds a diagnostic without notes.
func New(sev Severity, code Code, field, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Field:    field,
		Message:  msg,
	}
}

// WithNote returns a copy of d with msg appended to its notes.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	notes := make([]string, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, msg)
	return d
}
