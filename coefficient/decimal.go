package coefficient

import (
	"github.com/shopspring/decimal"
)

// Decimal is the Field of decimal.Decimal.
// Quotients, negative powers and trigonometric functions are rounded to
// decimal.DivisionPrecision digits.
type Decimal struct {
	// Tolerance is the maximum distance to one accepted by IsOne.
	// The zero value uses DefaultTolerance.
	Tolerance decimal.Decimal
}

func (Decimal) Zero() decimal.Decimal { return decimal.Zero }

func (Decimal) One() decimal.Decimal { return decimal.NewFromInt(1) }

func (Decimal) FromInt64(x int64) decimal.Decimal { return decimal.NewFromInt(x) }

func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }

func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

func (Decimal) Neg(a decimal.Decimal) decimal.Decimal { return a.Neg() }

func (Decimal) Quo(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, errZeroDivision(a)
	}
	return a.Div(b), nil
}

func (f Decimal) Pow(x decimal.Decimal, n int64) (decimal.Decimal, error) {
	return pow[decimal.Decimal](f, x, n, func(x decimal.Decimal) (decimal.Decimal, error) {
		return decimal.NewFromInt(1).Div(x), nil
	})
}

func (Decimal) Cos(x decimal.Decimal) (decimal.Decimal, error) { return x.Cos(), nil }

func (Decimal) Sin(x decimal.Decimal) (decimal.Decimal, error) { return x.Sin(), nil }

func (Decimal) IsZero(x decimal.Decimal) bool { return x.IsZero() }

func (f Decimal) IsOne(x decimal.Decimal) bool {
	tol := f.Tolerance
	if tol.IsZero() {
		tol = decimal.NewFromFloat(DefaultTolerance)
	}
	return x.Sub(decimal.NewFromInt(1)).Abs().LessThanOrEqual(tol)
}

func (Decimal) Equal(a, b decimal.Decimal) bool { return a.Equal(b) }

func (Decimal) String(x decimal.Decimal) string { return x.String() }
