// Package quadratic solves a·x² + b·x + c = 0 over IEEE-754 float64.
//
// # Outcomes
//
// Solve returns exactly one Result variant:
//
//   - NotQuadratic – a is exactly zero, the expression is not quadratic.
//   - TwoRealRoots – the discriminant is positive.
//   - OneRealRoot – the discriminant is exactly zero.
//   - ComplexPair – the discriminant is negative; roots are Re ∓ Im·i.
//
// Result is a closed set: the unexported marker method keeps other packages
// from adding variants, so a type switch over the four types is exhaustive.
//
// # Comparisons
//
// Both a == 0 and Δ == 0 are exact float comparisons with no tolerance.
// Coefficients that are "almost" degenerate (a = 1e-300) are solved as
// quadratics, and a discriminant that should be zero but carries rounding
// error lands in one of the other branches.
//
// The package does no I/O; formatting lives in internal/render.
package quadratic
