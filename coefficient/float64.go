package coefficient

import (
	"fmt"
	"math"
	"strconv"

	"github.com/termalg/termalg"
)

// DefaultTolerance is the tolerance of Float64.IsOne when none is set.
const DefaultTolerance = 1e-12

// Float64 is the Field of float64.
type Float64 struct {
	// Tolerance is the maximum distance to one accepted by IsOne.
	Tolerance float64
}

func (Float64) Zero() float64 { return 0 }

func (Float64) One() float64 { return 1 }

func (Float64) FromInt64(x int64) float64 { return float64(x) }

func (Float64) Add(a, b float64) float64 { return a + b }

func (Float64) Sub(a, b float64) float64 { return a - b }

func (Float64) Mul(a, b float64) float64 { return a * b }

func (Float64) Neg(a float64) float64 { return -a }

func (Float64) Quo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: cannot Quo: division of %v by zero", termalg.ErrDomain, a)
	}
	return a / b, nil
}

func (Float64) Pow(x float64, n int64) (float64, error) {
	if x == 0 && n < 0 {
		return 0, fmt.Errorf("%w: cannot Pow: zero raised to the negative power %d", termalg.ErrDomain, n)
	}
	return math.Pow(x, float64(n)), nil
}

func (Float64) Cos(x float64) (float64, error) { return math.Cos(x), nil }

func (Float64) Sin(x float64) (float64, error) { return math.Sin(x), nil }

func (Float64) IsZero(x float64) bool { return x == 0 }

func (f Float64) IsOne(x float64) bool {
	tol := f.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	return math.Abs(x-1) <= tol
}

func (Float64) Equal(a, b float64) bool { return a == b }

func (Float64) String(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
