package trig

import (
	"github.com/termalg/termalg/symbols"
)

// MergeSymbols returns m, living in ss, with zero multipliers inserted for the
// symbols of ins. The flavour is preserved.
func (m Monomial[T]) MergeSymbols(ins symbols.InsertionMap, ss symbols.Set) (r Monomial[T], err error) {

	if r.key, err = m.key.MergeSymbols(ins, ss); err != nil {
		return Monomial[T]{}, err
	}

	r.sine = m.sine

	return
}

// Trim returns m without the multipliers flagged in mask. The flavour is preserved.
func (m Monomial[T]) Trim(mask []bool, ss symbols.Set) (r Monomial[T], err error) {

	if r.key, err = m.key.Trim(mask, ss); err != nil {
		return Monomial[T]{}, err
	}

	r.sine = m.sine

	return
}

// TrimIdentify clears the flags of mask at the indices of the non-zero
// multipliers of m.
func (m Monomial[T]) TrimIdentify(mask []bool, ss symbols.Set) error {
	return m.key.TrimIdentify(mask, ss)
}
