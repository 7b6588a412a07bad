// Package monomial implements algebraic monomials whose exponent vector is
// packed into a single signed integer with the Kronecker codec.
//
// A Monomial does not store its dimension: every operation is given the
// symbols.Set the monomial lives in, and the exponent vector is decoded
// against the size of that set. Monomials are plain values that can be
// copied and shared between goroutines.
package monomial

import (
	"fmt"
	"iter"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/utils"
)

// Monomial is an algebraic monomial x_0^{v_0} * ... * x_{n-1}^{v_{n-1}}
// stored as the Kronecker code of its exponent vector v.
// The zero value is the unitary monomial of any symbol set.
type Monomial[T kronecker.Integer] struct {
	value T
}

// New returns the monomial of exponent vector v in the symbol set ss.
func New[T kronecker.Integer](v []T, ss symbols.Set) (m Monomial[T], err error) {

	if len(v) != ss.Len() {
		return m, fmt.Errorf("%w: cannot New: the exponent vector has a size of %d while the symbol set has a size of %d", termalg.ErrInvalidArgument, len(v), ss.Len())
	}

	if m.value, err = kronecker.Encode(v); err != nil {
		return Monomial[T]{}, fmt.Errorf("cannot New: %w", err)
	}

	return
}

// NewFromSeq returns the monomial whose exponents are produced by seq.
func NewFromSeq[T kronecker.Integer](seq iter.Seq[T], ss symbols.Set) (m Monomial[T], err error) {

	v := make([]T, 0, ss.Len())

	for x := range seq {
		if len(v) == ss.Len() {
			return m, fmt.Errorf("%w: cannot NewFromSeq: the sequence has more elements than the symbol set (%d)", termalg.ErrInvalidArgument, ss.Len())
		}
		v = append(v, x)
	}

	return New(v, ss)
}

// NewFromSymbols returns the unitary monomial of ss.
func NewFromSymbols[T kronecker.Integer](ss symbols.Set) (m Monomial[T], err error) {
	return New(make([]T, ss.Len()), ss)
}

// FromInt returns the monomial of code n.
// The result is not checked against any symbol set.
func FromInt[T kronecker.Integer](n T) Monomial[T] {
	return Monomial[T]{value: n}
}

// Convert returns the monomial of width T with the same exponents as other,
// which must be compatible with ss.
func Convert[T, U kronecker.Integer](other Monomial[U], ss symbols.Set) (m Monomial[T], err error) {

	vu, err := other.Unpack(ss)
	if err != nil {
		return m, fmt.Errorf("cannot Convert: %w", err)
	}

	v := make([]T, len(vu))
	for i := range vu {
		var ok bool
		if v[i], ok = utils.Narrow[T](int64(vu[i])); !ok {
			return m, fmt.Errorf("%w: cannot Convert: exponent %d does not fit in %d bits", termalg.ErrOverflow, vu[i], utils.BitWidth[T]())
		}
	}

	return New(v, ss)
}

// Int returns the code of the monomial.
func (m Monomial[T]) Int() T {
	return m.value
}

// SetInt sets the code of the monomial.
func (m *Monomial[T]) SetInt(n T) {
	m.value = n
}

// Unpack returns the exponent vector of the monomial in ss.
func (m Monomial[T]) Unpack(ss symbols.Set) (v []T, err error) {
	return kronecker.Decode(m.value, ss.Len())
}

// IsCompatible returns true if the monomial can live in ss.
func (m Monomial[T]) IsCompatible(ss symbols.Set) bool {
	_, err := m.Unpack(ss)
	return err == nil
}

// IsUnitary returns true if all the exponents are zero.
func (m Monomial[T]) IsUnitary() bool {
	return m.value == 0
}

// IsZero returns false: a monomial is never zero.
func (m Monomial[T]) IsZero() bool {
	return false
}

// Equal returns true if both monomials have the same code.
func (m Monomial[T]) Equal(other Monomial[T]) bool {
	return m.value == other.value
}

// Hash returns a hash of the monomial, which is its code.
func (m Monomial[T]) Hash() uint64 {
	return uint64(m.value)
}

// Cmp compares the codes of m and other and returns -1, 0 or 1.
// Both monomials must be compatible with ss.
func (m Monomial[T]) Cmp(other Monomial[T], ss symbols.Set) (int, error) {

	if !m.IsCompatible(ss) || !other.IsCompatible(ss) {
		return 0, fmt.Errorf("%w: cannot Cmp: the monomials are not compatible with the symbol set %s", termalg.ErrInvalidArgument, ss)
	}

	switch {
	case m.value < other.value:
		return -1, nil
	case m.value > other.value:
		return 1, nil
	default:
		return 0, nil
	}
}
