package monomial

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/symbols"
)

// MergeSymbols returns m, living in ss, with zero exponents inserted for the
// symbols of ins.
func (m Monomial[T]) MergeSymbols(ins symbols.InsertionMap, ss symbols.Set) (r Monomial[T], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return r, fmt.Errorf("cannot MergeSymbols: %w", err)
	}

	if err = ins.Check(len(v)); err != nil {
		return r, fmt.Errorf("cannot MergeSymbols: %w", err)
	}

	if r.value, err = kronecker.Encode(symbols.Apply(ins, v)); err != nil {
		return Monomial[T]{}, fmt.Errorf("cannot MergeSymbols: %w", err)
	}

	return
}

// Trim returns m without the exponents flagged in mask.
func (m Monomial[T]) Trim(mask []bool, ss symbols.Set) (r Monomial[T], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return r, fmt.Errorf("cannot Trim: %w", err)
	}

	if len(mask) != len(v) {
		return r, fmt.Errorf("%w: cannot Trim: the mask has a size of %d while the monomial has a size of %d", termalg.ErrInvalidArgument, len(mask), len(v))
	}

	w := make([]T, 0, len(v))
	for i := range v {
		if !mask[i] {
			w = append(w, v[i])
		}
	}

	if r.value, err = kronecker.Encode(w); err != nil {
		return Monomial[T]{}, fmt.Errorf("cannot Trim: %w", err)
	}

	return
}

// TrimIdentify clears the flags of mask at the indices of the non-zero
// exponents of m. Called over all the terms of a series with an all-true
// mask, it identifies the symbols that can be trimmed.
func (m Monomial[T]) TrimIdentify(mask []bool, ss symbols.Set) (err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return fmt.Errorf("cannot TrimIdentify: %w", err)
	}

	if len(mask) != len(v) {
		return fmt.Errorf("%w: cannot TrimIdentify: the mask has a size of %d while the monomial has a size of %d", termalg.ErrInvalidArgument, len(mask), len(v))
	}

	for i := range v {
		if v[i] != 0 {
			mask[i] = false
		}
	}

	return
}
