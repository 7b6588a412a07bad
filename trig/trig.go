// Package trig implements trigonometric monomials cos(n_0*x_0 + ... + n_{k-1}*x_{k-1})
// and sin(n_0*x_0 + ... + n_{k-1}*x_{k-1}), whose integer multiplier vector is
// packed with the Kronecker codec.
//
// A monomial is canonical when its first non-zero multiplier is positive.
// Canonicalising a sine flips its sign, since sin is odd, so every operation
// that canonicalises an intermediate result reports the sign it introduced.
package trig

import (
	"fmt"
	"iter"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/monomial"
	"github.com/termalg/termalg/symbols"
)

// Monomial is a trigonometric monomial. The zero value is cos(0) = 1, the
// unitary monomial of any symbol set.
type Monomial[T kronecker.Integer] struct {
	key  monomial.Monomial[T]
	sine bool
}

// New returns the monomial of multiplier vector v in ss, with the cosine
// flavour if cos is true and the sine flavour otherwise.
// The result is not canonicalised.
func New[T kronecker.Integer](v []T, cos bool, ss symbols.Set) (m Monomial[T], err error) {

	key, err := monomial.New(v, ss)
	if err != nil {
		return
	}

	return Monomial[T]{key: key, sine: !cos}, nil
}

// NewFromSeq returns the monomial whose multipliers are produced by seq.
func NewFromSeq[T kronecker.Integer](seq iter.Seq[T], cos bool, ss symbols.Set) (m Monomial[T], err error) {

	key, err := monomial.NewFromSeq(seq, ss)
	if err != nil {
		return
	}

	return Monomial[T]{key: key, sine: !cos}, nil
}

// NewFromSymbols returns the unitary monomial cos(0) of ss.
func NewFromSymbols[T kronecker.Integer](ss symbols.Set) (m Monomial[T], err error) {

	key, err := monomial.NewFromSymbols[T](ss)
	if err != nil {
		return
	}

	return Monomial[T]{key: key}, nil
}

// FromInt returns the monomial of code n and the given flavour.
// The result is not checked against any symbol set.
func FromInt[T kronecker.Integer](n T, cos bool) Monomial[T] {
	return Monomial[T]{key: monomial.FromInt(n), sine: !cos}
}

// Convert returns the monomial of width T with the same multipliers and
// flavour as other.
func Convert[T, U kronecker.Integer](other Monomial[U], ss symbols.Set) (m Monomial[T], err error) {

	key, err := monomial.Convert[T](other.key, ss)
	if err != nil {
		return
	}

	return Monomial[T]{key: key, sine: other.sine}, nil
}

// Int returns the code of the multiplier vector.
func (m Monomial[T]) Int() T {
	return m.key.Int()
}

// SetInt sets the code of the multiplier vector.
func (m *Monomial[T]) SetInt(n T) {
	m.key.SetInt(n)
}

// Flavour returns true for a cosine and false for a sine.
func (m Monomial[T]) Flavour() bool {
	return !m.sine
}

// SetFlavour sets the flavour, true for a cosine and false for a sine.
func (m *Monomial[T]) SetFlavour(cos bool) {
	m.sine = !cos
}

// Unpack returns the multiplier vector of the monomial in ss.
func (m Monomial[T]) Unpack(ss symbols.Set) ([]T, error) {
	return m.key.Unpack(ss)
}

// IsCompatible returns true if the monomial can live in ss and is canonical.
func (m Monomial[T]) IsCompatible(ss symbols.Set) bool {
	v, err := m.Unpack(ss)
	return err == nil && isCanonical(v)
}

// IsUnitary returns true if the monomial is cos(0).
func (m Monomial[T]) IsUnitary() bool {
	return m.key.IsUnitary() && !m.sine
}

// IsZero returns true if the monomial is sin(0).
func (m Monomial[T]) IsZero() bool {
	return m.key.IsUnitary() && m.sine
}

// Canonicalise negates the multiplier vector if its first non-zero multiplier
// is negative and reports whether it did. The caller must flip the sign of
// the coefficient of a sine when Canonicalise returns true.
func (m *Monomial[T]) Canonicalise(ss symbols.Set) (changed bool, err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return false, fmt.Errorf("cannot Canonicalise: %w", err)
	}

	if !canonicalise(v) {
		return false, nil
	}

	key, err := monomial.New(v, ss)
	if err != nil {
		return false, fmt.Errorf("cannot Canonicalise: %w", err)
	}

	m.key = key

	return true, nil
}

// Equal returns true if both monomials have the same multipliers and flavour.
func (m Monomial[T]) Equal(other Monomial[T]) bool {
	return m.key.Equal(other.key) && m.sine == other.sine
}

// Hash returns a hash of the monomial, which is the code of its multiplier
// vector. Monomials differing only by their flavour collide.
func (m Monomial[T]) Hash() uint64 {
	return m.key.Hash()
}

// Cmp compares the codes of m and other, then their flavours (cosine first),
// and returns -1, 0 or 1. Both monomials must be compatible with ss.
func (m Monomial[T]) Cmp(other Monomial[T], ss symbols.Set) (int, error) {

	if !m.IsCompatible(ss) || !other.IsCompatible(ss) {
		return 0, fmt.Errorf("%w: cannot Cmp: the monomials are not compatible with the symbol set %s", termalg.ErrInvalidArgument, ss)
	}

	c, err := m.key.Cmp(other.key, ss)

	if err != nil || c != 0 {
		return c, err
	}

	switch {
	case m.sine == other.sine:
		return 0, nil
	case other.sine:
		return -1, nil
	default:
		return 1, nil
	}
}

func isCanonical[T kronecker.Integer](v []T) bool {
	for _, x := range v {
		if x != 0 {
			return x > 0
		}
	}
	return true
}

// canonicalise negates v in place if its first non-zero component is negative.
// The codec bounds are symmetric, so the result stays within bounds.
func canonicalise[T kronecker.Integer](v []T) bool {

	if isCanonical(v) {
		return false
	}

	for i := range v {
		v[i] = -v[i]
	}

	return true
}
