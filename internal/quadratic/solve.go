package quadratic

import "math"

// Coefficients of a·x² + b·x + c.
type Coefficients struct {
	A float64
	B float64
	C float64
}

// Discriminant returns b² - 4ac.
func Discriminant(co Coefficients) float64 {
	return co.B*co.B - 4*co.A*co.C
}

// Solve classifies the equation and computes its roots.
func Solve(co Coefficients) Result {
	// exact comparison, see package doc
	if co.A == 0 {
		return NotQuadratic{}
	}

	delta := Discriminant(co)
	twoA := 2 * co.A

	switch {
	case delta > 0:
		sq := math.Sqrt(delta)
		return TwoRealRoots{
			X1: (-co.B - sq) / twoA,
			X2: (-co.B + sq) / twoA,
		}
	case delta == 0:
		return OneRealRoot{X: -co.B / twoA}
	default:
		// Δ < 0, or NaN when a coefficient is NaN or Inf
		return ComplexPair{
			Re: -co.B / twoA,
			Im: math.Sqrt(-delta) / twoA,
		}
	}
}

// Eval returns a·x² + b·x + c for a complex x.
func Eval(co Coefficients, x complex128) complex128 {
	return complex(co.A, 0)*x*x + complex(co.B, 0)*x + complex(co.C, 0)
}
