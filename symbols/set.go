// Package symbols implements the ordered symbol sets that define the dimension
// of a monomial, together with the index-based maps passed to monomial
// operations.
package symbols

import (
	"fmt"
	"sort"
	"strings"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/utils"
)

// Set is an ordered set of unique symbol names. The position of a name in the
// set is the index of the corresponding component in the monomials living in
// the set. The zero value is the empty set.
type Set struct {
	names []string
}

// NewSet creates a new Set from the given names. Duplicates are removed and
// the names are sorted.
func NewSet(names ...string) Set {
	return Set{names: utils.GetSortedDistincts(names)}
}

// Len returns the number of symbols in the set.
func (s Set) Len() int {
	return len(s.names)
}

// Names returns a copy of the names of the set, in order.
func (s Set) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Name returns the i-th name of the set.
func (s Set) Name(i int) string {
	return s.names[i]
}

// InsertionIndex returns the index at which name is or would be inserted in the set.
func (s Set) InsertionIndex(name string) int {
	return sort.SearchStrings(s.names, name)
}

// Index returns the index of name in the set and true, or the insertion index
// and false if name is not in the set.
func (s Set) Index(name string) (int, bool) {
	i := s.InsertionIndex(name)
	return i, i < len(s.names) && s.names[i] == name
}

// Contains returns true if name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s.Index(name)
	return ok
}

// Add returns a new set containing the symbols of s and name.
func (s Set) Add(name string) Set {
	i, ok := s.Index(name)
	if ok {
		return s
	}
	return Set{names: utils.Insert(s.names, i, name)}
}

// Equal returns true if both sets contain the same symbols.
func (s Set) Equal(other Set) bool {
	if len(s.names) != len(other.names) {
		return false
	}
	for i := range s.names {
		if s.names[i] != other.names[i] {
			return false
		}
	}
	return true
}

// IndicesOf returns the set of the indices of the given names that are in s.
// Names that are not in s are ignored.
func (s Set) IndicesOf(names ...string) (idx IndexSet) {
	for _, name := range names {
		if i, ok := s.Index(name); ok {
			idx = append(idx, i)
		}
	}
	return NewIndexSet(idx...)
}

// Trim returns the set without the symbols flagged in mask.
func (s Set) Trim(mask []bool) (Set, error) {
	if len(mask) != len(s.names) {
		return Set{}, fmt.Errorf("%w: cannot Trim: the mask has a size of %d while the symbol set has a size of %d", termalg.ErrInvalidArgument, len(mask), len(s.names))
	}

	names := make([]string, 0, len(s.names))
	for i := range s.names {
		if !mask[i] {
			names = append(names, s.names[i])
		}
	}

	return Set{names: names}, nil
}

func (s Set) String() string {
	return "{" + strings.Join(s.names, ", ") + "}"
}

// Merge returns the union of a and b together with the insertion maps
// which, once passed to the MergeSymbols method of a monomial living in a
// (resp. b), produce a monomial living in the union.
func Merge(a, b Set) (merged Set, insA, insB InsertionMap) {

	merged = NewSet(append(a.Names(), b.names...)...)

	insA = newInsertionMap(a, merged)
	insB = newInsertionMap(b, merged)

	return
}

func newInsertionMap(s, merged Set) (ins InsertionMap) {

	names := map[int][]string{}

	for _, name := range merged.names {
		if i, ok := s.Index(name); !ok {
			names[i] = append(names[i], name)
		}
	}

	ins = InsertionMap{}
	for i, n := range names {
		ins[i] = Set{names: n}
	}

	return
}
