package monomial

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/utils"
)

// Multiply returns the product of a and b, both living in ss.
func Multiply[T kronecker.Integer](a, b Monomial[T], ss symbols.Set) (m Monomial[T], err error) {

	va, err := a.Unpack(ss)
	if err != nil {
		return m, fmt.Errorf("cannot Multiply: %w", err)
	}

	vb, err := b.Unpack(ss)
	if err != nil {
		return m, fmt.Errorf("cannot Multiply: %w", err)
	}

	for i := range va {
		var ok bool
		if va[i], ok = utils.AddSigned(va[i], vb[i]); !ok {
			return m, fmt.Errorf("%w: cannot Multiply: exponent sum overflows at index %d", termalg.ErrOverflow, i)
		}
	}

	if m.value, err = kronecker.Encode(va); err != nil {
		return Monomial[T]{}, fmt.Errorf("cannot Multiply: %w", err)
	}

	return
}

// Mul returns m * other.
func (m Monomial[T]) Mul(other Monomial[T], ss symbols.Set) (Monomial[T], error) {
	return Multiply(m, other, ss)
}

// Pow returns m^e.
func (m Monomial[T]) Pow(e int64, ss symbols.Set) (r Monomial[T], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return r, fmt.Errorf("cannot Pow: %w", err)
	}

	et, ok := utils.Narrow[T](e)
	if !ok {
		return r, fmt.Errorf("%w: cannot Pow: exponent %d does not fit in %d bits", termalg.ErrOverflow, e, utils.BitWidth[T]())
	}

	for i := range v {
		if v[i], ok = utils.MulSigned(v[i], et); !ok {
			return r, fmt.Errorf("%w: cannot Pow: exponent product overflows at index %d", termalg.ErrOverflow, i)
		}
	}

	if r.value, err = kronecker.Encode(v); err != nil {
		return Monomial[T]{}, fmt.Errorf("cannot Pow: %w", err)
	}

	return
}

// Partial returns the partial derivative of m with respect to the symbol at
// index pos as the pair (coefficient, monomial). If m does not depend on the
// symbol the result is (0, unitary monomial).
func (m Monomial[T]) Partial(pos int, ss symbols.Set) (c T, r Monomial[T], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return c, r, fmt.Errorf("cannot Partial: %w", err)
	}

	if pos < 0 || pos >= len(v) {
		return c, r, fmt.Errorf("%w: cannot Partial: invalid index %d for a monomial of size %d", termalg.ErrInvalidArgument, pos, len(v))
	}

	if v[pos] == 0 {
		return 0, Monomial[T]{}, nil
	}

	c = v[pos]

	var ok bool
	if v[pos], ok = utils.SubSigned(c, 1); !ok {
		return 0, r, fmt.Errorf("%w: cannot Partial: decrementing the exponent %d overflows", termalg.ErrOverflow, c)
	}

	if r.value, err = kronecker.Encode(v); err != nil {
		return 0, Monomial[T]{}, fmt.Errorf("cannot Partial: %w", err)
	}

	return
}

// Integrate returns the antiderivative of m with respect to the symbol name as
// the pair (divisor, monomial): m integrates to monomial/divisor. If name is
// not in ss, the returned monomial lives in ss.Add(name).
func (m Monomial[T]) Integrate(name string, ss symbols.Set) (c T, r Monomial[T], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return c, r, fmt.Errorf("cannot Integrate: %w", err)
	}

	i, ok := ss.Index(name)

	if ok {

		if v[i] == -1 {
			return c, r, fmt.Errorf("%w: cannot Integrate: the exponent of the integration variable (%s) is -1, the integration would generate a logarithmic term", termalg.ErrInvalidArgument, name)
		}

		if v[i], ok = utils.AddSigned(v[i], 1); !ok {
			return c, r, fmt.Errorf("%w: cannot Integrate: incrementing the exponent of %s overflows", termalg.ErrOverflow, name)
		}

		c = v[i]

	} else {
		v = utils.Insert(v, i, 1)
		c = 1
	}

	if r.value, err = kronecker.Encode(v); err != nil {
		return 0, Monomial[T]{}, fmt.Errorf("cannot Integrate: %w", err)
	}

	return
}
