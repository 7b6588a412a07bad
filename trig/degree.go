package trig

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/monomial"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/utils"
)

// TDegree returns the sum of the multipliers.
func (m Monomial[T]) TDegree(ss symbols.Set) (int64, error) {
	return m.key.Degree(ss)
}

// TLDegree returns the trigonometric low degree, which is equal to TDegree.
func (m Monomial[T]) TLDegree(ss symbols.Set) (int64, error) {
	return m.key.Degree(ss)
}

// PartialTDegree returns the sum of the multipliers at the indices of idx.
func (m Monomial[T]) PartialTDegree(idx symbols.IndexSet, ss symbols.Set) (int64, error) {
	return m.key.PartialDegree(idx, ss)
}

// PartialTLDegree is equal to PartialTDegree.
func (m Monomial[T]) PartialTLDegree(idx symbols.IndexSet, ss symbols.Set) (int64, error) {
	return m.key.PartialDegree(idx, ss)
}

// TOrder returns the sum of the absolute values of the multipliers.
func (m Monomial[T]) TOrder(ss symbols.Set) (int64, error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return 0, fmt.Errorf("cannot TOrder: %w", err)
	}

	return order(v)
}

// TLOrder returns the trigonometric low order, which is equal to TOrder.
func (m Monomial[T]) TLOrder(ss symbols.Set) (int64, error) {
	return m.TOrder(ss)
}

// PartialTOrder returns the sum of the absolute values of the multipliers
// at the indices of idx.
func (m Monomial[T]) PartialTOrder(idx symbols.IndexSet, ss symbols.Set) (int64, error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return 0, fmt.Errorf("cannot PartialTOrder: %w", err)
	}

	if err = idx.Check(len(v)); err != nil {
		return 0, fmt.Errorf("cannot PartialTOrder: %w", err)
	}

	return order(monomial.Select(v, idx))
}

// PartialTLOrder is equal to PartialTOrder.
func (m Monomial[T]) PartialTLOrder(idx symbols.IndexSet, ss symbols.Set) (int64, error) {
	return m.PartialTOrder(idx, ss)
}

func order[T kronecker.Integer](v []T) (s int64, err error) {
	for _, x := range v {
		a, ok := utils.AbsSigned(int64(x))
		if ok {
			s, ok = utils.AddSigned(s, a)
		}
		if !ok {
			return 0, fmt.Errorf("%w: the sum of the absolute values of the multipliers overflows", termalg.ErrOverflow)
		}
	}
	return
}
