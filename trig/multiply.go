package trig

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/coefficient"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/monomial"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/utils"
)

// Product is one of the two terms of the product of two monomials.
// It represents Sign/2 * Monomial, where Sign is 1 or -1.
type Product[T kronecker.Integer] struct {
	Sign     int
	Monomial Monomial[T]
}

// Multiply returns the product of a and b, both living in ss, expanded with
// the product-to-sum identities:
//
//	cos(a)cos(b) = cos(a-b)/2 + cos(a+b)/2
//	sin(a)sin(b) = cos(a-b)/2 - cos(a+b)/2
//	cos(a)sin(b) = -sin(a-b)/2 + sin(a+b)/2
//	sin(a)cos(b) = sin(a-b)/2 + sin(a+b)/2
//
// The first Product is built from a-b and the second from a+b. Both are
// canonical. A Product whose monomial IsZero has a zero value.
func Multiply[T kronecker.Integer](a, b Monomial[T], ss symbols.Set) (p [2]Product[T], err error) {

	va, err := a.Unpack(ss)
	if err != nil {
		return p, fmt.Errorf("cannot Multiply: %w", err)
	}

	vb, err := b.Unpack(ss)
	if err != nil {
		return p, fmt.Errorf("cannot Multiply: %w", err)
	}

	d := make([]T, len(va))
	s := make([]T, len(va))

	for i := range va {
		var okd, oks bool
		d[i], okd = utils.SubSigned(va[i], vb[i])
		s[i], oks = utils.AddSigned(va[i], vb[i])
		if !okd || !oks {
			return p, fmt.Errorf("%w: cannot Multiply: multiplier overflow at index %d", termalg.ErrOverflow, i)
		}
	}

	// Flavour of the results and signs of the identities.
	var sine bool
	var signD, signS int

	switch {
	case !a.sine && !b.sine:
		sine, signD, signS = false, 1, 1
	case a.sine && b.sine:
		sine, signD, signS = false, 1, -1
	case !a.sine:
		sine, signD, signS = true, -1, 1
	default:
		sine, signD, signS = true, 1, 1
	}

	if canonicalise(d) && sine {
		signD = -signD
	}

	if canonicalise(s) && sine {
		signS = -signS
	}

	var keyD, keyS monomial.Monomial[T]

	if keyD, err = monomial.New(d, ss); err != nil {
		return p, fmt.Errorf("cannot Multiply: %w", err)
	}

	if keyS, err = monomial.New(s, ss); err != nil {
		return p, fmt.Errorf("cannot Multiply: %w", err)
	}

	p[0] = Product[T]{Sign: signD, Monomial: Monomial[T]{key: keyD, sine: sine}}
	p[1] = Product[T]{Sign: signS, Monomial: Monomial[T]{key: keyS, sine: sine}}

	return
}

// Mul returns m * other. See Multiply.
func (m Monomial[T]) Mul(other Monomial[T], ss symbols.Set) ([2]Product[T], error) {
	return Multiply(m, other, ss)
}

// Pair is a coefficient multiplying a monomial.
type Pair[T kronecker.Integer, C any] struct {
	Coefficient C
	Monomial    Monomial[T]
}

// MultiplyTerms returns the product of the terms t1 and t2 as two terms, with
// the coefficients Sign * c1 * c2 / 2. See Multiply.
func MultiplyTerms[T kronecker.Integer, C any](f coefficient.Field[C], t1, t2 Pair[T, C], ss symbols.Set) (p [2]Pair[T, C], err error) {

	prod, err := Multiply(t1.Monomial, t2.Monomial, ss)
	if err != nil {
		return
	}

	c, err := f.Quo(f.Mul(t1.Coefficient, t2.Coefficient), f.FromInt64(2))
	if err != nil {
		return p, fmt.Errorf("cannot MultiplyTerms: %w", err)
	}

	for i := range prod {

		p[i].Monomial = prod[i].Monomial

		if prod[i].Sign < 0 {
			p[i].Coefficient = f.Neg(c)
		} else {
			p[i].Coefficient = c
		}
	}

	return
}
