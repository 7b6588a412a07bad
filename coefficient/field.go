// Package coefficient implements the arithmetic of the values that are
// substituted into monomials and of the coefficients that multiply them.
package coefficient

import (
	"fmt"

	"github.com/termalg/termalg"
)

// Field is the arithmetic of a coefficient type C.
// Implementations must never mutate their operands.
type Field[C any] interface {
	Zero() C
	One() C
	FromInt64(x int64) C

	Add(a, b C) C
	Sub(a, b C) C
	Mul(a, b C) C
	Neg(a C) C

	// Quo returns a/b and an error wrapping termalg.ErrDomain if b is zero
	// or if the quotient cannot be represented by C.
	Quo(a, b C) (C, error)

	// Pow returns x^n and an error wrapping termalg.ErrDomain if the
	// power is undefined or cannot be represented by C.
	Pow(x C, n int64) (C, error)

	// Cos and Sin return cos(x) and sin(x) and an error wrapping
	// termalg.ErrDomain if the result cannot be represented by C.
	Cos(x C) (C, error)
	Sin(x C) (C, error)

	IsZero(x C) bool
	// IsOne returns true if x is one, up to the precision of C.
	IsOne(x C) bool
	Equal(a, b C) bool

	String(x C) string
}

// powBySquaring returns x^n for n >= 0.
func powBySquaring[C any](f Field[C], x C, n int64) (y C) {
	y = f.One()
	for n > 0 {
		if n&1 == 1 {
			y = f.Mul(y, x)
		}
		x = f.Mul(x, x)
		n >>= 1
	}
	return
}

// pow returns x^n, using inv for negative exponents.
func pow[C any](f Field[C], x C, n int64, inv func(C) (C, error)) (y C, err error) {

	if n >= 0 {
		return powBySquaring(f, x, n), nil
	}

	if f.IsZero(x) {
		return y, fmt.Errorf("%w: cannot Pow: zero raised to the negative power %d", termalg.ErrDomain, n)
	}

	if y, err = inv(x); err != nil {
		return
	}

	// -n overflows for n = MinInt64, which is even.
	if n == -n {
		y = f.Mul(y, y)
		n /= 2
	}

	return powBySquaring(f, y, -n), nil
}

func errZeroDivision(a fmt.Stringer) error {
	return fmt.Errorf("%w: cannot Quo: division of %s by zero", termalg.ErrDomain, a)
}
