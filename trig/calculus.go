package trig

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/symbols"
)

// Partial returns the partial derivative of m with respect to the symbol at
// index pos as the pair (coefficient, monomial):
//
//	d/dx_pos cos(L) = -n_pos * sin(L)
//	d/dx_pos sin(L) =  n_pos * cos(L)
//
// If n_pos is zero the result is (0, cos(0)).
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

	// The multipliers are within the symmetric codec bounds.
	if m.sine {
		return v[pos], Monomial[T]{key: m.key}, nil
	}

	return -v[pos], Monomial[T]{key: m.key, sine: true}, nil
}

// Integrate returns the antiderivative of m with respect to the symbol name as
// the pair (divisor, monomial): m integrates to monomial/divisor.
//
//	int cos(L) dx = sin(L)/n
//	int sin(L) dx = cos(L)/(-n)
//
// If m does not depend on name the divisor is zero and the monomial is cos(0).
func (m Monomial[T]) Integrate(name string, ss symbols.Set) (c T, r Monomial[T], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return c, r, fmt.Errorf("cannot Integrate: %w", err)
	}

	i, ok := ss.Index(name)

	if !ok || v[i] == 0 {
		return 0, Monomial[T]{}, nil
	}

	if m.sine {
		return -v[i], Monomial[T]{key: m.key}, nil
	}

	return v[i], Monomial[T]{key: m.key, sine: true}, nil
}
