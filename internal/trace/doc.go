// Package trace records what a solver session does, step by step.
//
// It replaces a general-purpose logger: events are emitted only when the
// configured level asks for them, and go to stderr or a file.
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: point events about failures only
//   - LevelStep: session and step boundaries (prompt, read, solve, render)
//   - LevelDebug: everything, including per-token detail
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeStep, "solve", parentID)
//	defer span.End("")
package trace
