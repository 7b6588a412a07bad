package monomial

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/utils"
)

// Degree returns the sum of the exponents.
func (m Monomial[T]) Degree(ss symbols.Set) (int64, error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return 0, fmt.Errorf("cannot Degree: %w", err)
	}

	return sum(v)
}

// LDegree returns the low degree, which is equal to the degree.
func (m Monomial[T]) LDegree(ss symbols.Set) (int64, error) {
	return m.Degree(ss)
}

// PartialDegree returns the sum of the exponents at the indices of idx.
func (m Monomial[T]) PartialDegree(idx symbols.IndexSet, ss symbols.Set) (int64, error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return 0, fmt.Errorf("cannot PartialDegree: %w", err)
	}

	if err = idx.Check(len(v)); err != nil {
		return 0, fmt.Errorf("cannot PartialDegree: %w", err)
	}

	return sum(Select(v, idx))
}

// PartialLDegree returns the partial low degree, which is equal to the partial degree.
func (m Monomial[T]) PartialLDegree(idx symbols.IndexSet, ss symbols.Set) (int64, error) {
	return m.PartialDegree(idx, ss)
}

// Select returns the components of v at the indices of idx.
func Select[T kronecker.Integer](v []T, idx symbols.IndexSet) (s []T) {
	s = make([]T, len(idx))
	for i, j := range idx {
		s[i] = v[j]
	}
	return
}

func sum[T kronecker.Integer](v []T) (int64, error) {
	s, ok := utils.SumSigned(v)
	if !ok {
		return 0, fmt.Errorf("%w: the sum of the components overflows", termalg.ErrOverflow)
	}
	return s, nil
}
