package quadratic

// Kind identifies a Result variant.
type Kind uint8

const (
	// KindNotQuadratic is reported when a == 0.
	KindNotQuadratic Kind = iota + 1
	// KindTwoReal is reported when Δ > 0.
	KindTwoReal
	// KindOneReal is reported when Δ == 0.
	KindOneReal
	// KindComplex is reported when Δ < 0.
	KindComplex
)

// String returns the stable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotQuadratic:
		return "not-quadratic"
	case KindTwoReal:
		return "two-real"
	case KindOneReal:
		return "one-real"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Result is the outcome of Solve.
type Result interface {
	Kind() Kind
	// Roots returns the roots in reporting order, empty for NotQuadratic.
	Roots() []complex128
	isResult()
}

// NotQuadratic means the leading coefficient is zero.
type NotQuadratic struct{}

// TwoRealRoots holds two distinct real roots.
type TwoRealRoots struct {
	X1 float64
	X2 float64
}

// OneRealRoot holds the double root.
type OneRealRoot struct {
	X float64
}

// ComplexPair holds the conjugate roots Re - Im·i and Re + Im·i.
type ComplexPair struct {
	Re float64
	Im float64
}

func (NotQuadratic) Kind() Kind { return KindNotQuadratic }
func (TwoRealRoots) Kind() Kind { return KindTwoReal }
func (OneRealRoot) Kind() Kind  { return KindOneReal }
func (ComplexPair) Kind() Kind  { return KindComplex }

func (NotQuadratic) Roots() []complex128 { return nil }

func (r TwoRealRoots) Roots() []complex128 {
	return []complex128{complex(r.X1, 0), complex(r.X2, 0)}
}

func (r OneRealRoot) Roots() []complex128 {
	return []complex128{complex(r.X, 0)}
}

func (r ComplexPair) Roots() []complex128 {
	return []complex128{complex(r.Re, -r.Im), complex(r.Re, r.Im)}
}

func (NotQuadratic) isResult() {}
func (TwoRealRoots) isResult() {}
func (OneRealRoot) isResult()  {}
func (ComplexPair) isResult()  {}
