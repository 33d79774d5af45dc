// Package diag defines the diagnostic model for a solver session.
//
// # Purpose
//
//   - Capture findings about the coefficients read from the user (a value
//     that could not be parsed, input that ended early) without deciding
//     how they are shown.
//   - Decouple producers from storage through Reporter; BagReporter collects
//     into a Bag.
//
// # Scope
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; the driver decides when to render.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – numeric identifier with a stable string form (codes.go).
//   - Field – the coefficient the finding is about ("a", "b", "c"), empty
//     for session-wide findings.
//   - Message – short human-oriented text.
//   - Notes – optional extra lines, e.g. which value was used instead.
//
// Keep the model deterministic so diagnostics can be rendered as JSON and
// compared in tests.
package diag
