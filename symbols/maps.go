package symbols

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/utils"
)

// IndexSet is a sorted set of distinct symbol indices.
type IndexSet []int

// NewIndexSet returns the sorted set of the distinct given indices.
func NewIndexSet(idx ...int) IndexSet {
	return IndexSet(utils.GetSortedDistincts(idx))
}

// Check returns an error if the set is not sorted or if one of its
// indices is not a valid index for a monomial of the given size.
func (s IndexSet) Check(size int) error {
	if !utils.IsSortedDistinct(s) {
		return fmt.Errorf("%w: the index set %v is not sorted", termalg.ErrInvalidArgument, []int(s))
	}
	if len(s) != 0 && s[0] < 0 {
		return fmt.Errorf("%w: invalid negative index %d in the index set", termalg.ErrInvalidArgument, s[0])
	}
	if len(s) != 0 && s[len(s)-1] >= size {
		return fmt.Errorf("%w: the largest value in the index set is %d, but the monomial has a size of only %d", termalg.ErrInvalidArgument, s[len(s)-1], size)
	}
	return nil
}

// IndexMap maps symbol indices to values of type V.
type IndexMap[V any] map[int]V

// Keys returns the indices of the map in ascending order.
func (m IndexMap[V]) Keys() []int {
	return utils.GetSortedKeys(m)
}

// Check returns an error if one of the indices of the map
// is not a valid index for a monomial of the given size.
func (m IndexMap[V]) Check(size int) error {
	for i := range m {
		if i < 0 || i >= size {
			return fmt.Errorf("%w: the index %d of the substitution map must be smaller than the monomial's size (%d)", termalg.ErrInvalidArgument, i, size)
		}
	}
	return nil
}

// InsertionMap maps insertion indices to the sets of symbols inserted at
// that index. Index i means "before the i-th component", and the index equal
// to the size of the monomial means "after the last component".
type InsertionMap map[int]Set

// Keys returns the insertion indices in ascending order.
func (m InsertionMap) Keys() []int {
	return utils.GetSortedKeys(m)
}

// Check returns an error if the map is empty or if one of its indices is
// greater than the given size.
func (m InsertionMap) Check(size int) error {

	if len(m) == 0 {
		return fmt.Errorf("%w: cannot merge symbols: the insertion map cannot be empty", termalg.ErrInvalidArgument)
	}

	keys := m.Keys()

	if keys[0] < 0 {
		return fmt.Errorf("%w: cannot merge symbols: invalid negative insertion index %d", termalg.ErrInvalidArgument, keys[0])
	}

	if last := keys[len(keys)-1]; last > size {
		return fmt.Errorf("%w: cannot merge symbols: the last index of the insertion map (%d) must not be greater than the monomial's size (%d)", termalg.ErrInvalidArgument, last, size)
	}

	return nil
}

// Apply returns a new slice equal to v with zero values inserted
// according to the map. The map must have been checked against len(v).
func Apply[T any](m InsertionMap, v []T) (r []T) {

	var count int
	for _, s := range m {
		count += s.Len()
	}

	r = make([]T, 0, len(v)+count)

	for i := 0; i <= len(v); i++ {
		if s, ok := m[i]; ok {
			r = append(r, make([]T, s.Len())...)
		}
		if i < len(v) {
			r = append(r, v[i])
		}
	}

	return
}
