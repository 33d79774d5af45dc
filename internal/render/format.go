package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"quadra/internal/quadratic"
)

// DefaultPrecision is the number of digits after the decimal point.
const DefaultPrecision = 2

// Format renders res using c, without a trailing newline.
func Format(res quadratic.Result, c Catalog, prec int) string {
	switch r := res.(type) {
	case quadratic.NotQuadratic:
		return c.NotQuadratic
	case quadratic.TwoRealRoots:
		return fmt.Sprintf(c.TwoReal, Number(r.X1, prec), Number(r.X2, prec))
	case quadratic.OneRealRoot:
		return fmt.Sprintf(c.OneReal, Number(r.X, prec))
	case quadratic.ComplexPair:
		return fmt.Sprintf(c.Complex, Number(r.Re, prec), Number(r.Im, prec))
	default:
		panic(fmt.Sprintf("render: unexpected result %T", res))
	}
}

// Number formats v in fixed point with prec digits, independent of locale.
// Infinities and NaN use the C spelling; a value that rounds to zero never
// carries a minus sign.
func Number(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}
