package symbols

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/termalg/termalg"
)

func TestSet(t *testing.T) {

	t.Run("NewSet", func(t *testing.T) {
		s := NewSet("z", "x", "y", "x")
		require.Equal(t, 3, s.Len())
		require.Equal(t, []string{"x", "y", "z"}, s.Names())
		require.Equal(t, "y", s.Name(1))
		require.Equal(t, "{x, y, z}", s.String())
		require.Equal(t, 0, Set{}.Len())
	})

	t.Run("Index", func(t *testing.T) {
		s := NewSet("b", "d")
		i, ok := s.Index("d")
		require.True(t, ok)
		require.Equal(t, 1, i)

		i, ok = s.Index("c")
		require.False(t, ok)
		require.Equal(t, 1, i)

		require.Equal(t, 0, s.InsertionIndex("a"))
		require.Equal(t, 2, s.InsertionIndex("e"))
		require.True(t, s.Contains("b"))
		require.False(t, s.Contains("a"))
	})

	t.Run("Add", func(t *testing.T) {
		s := NewSet("b", "d")
		require.Equal(t, []string{"b", "c", "d"}, s.Add("c").Names())
		require.Equal(t, []string{"b", "d"}, s.Names(), "should not modify the receiver")
		require.True(t, s.Add("b").Equal(s))
	})

	t.Run("IndicesOf", func(t *testing.T) {
		s := NewSet("x", "y", "z")
		require.Equal(t, IndexSet{0, 2}, s.IndicesOf("z", "x", "w", "z"))
		require.Empty(t, s.IndicesOf("w"))
	})

	t.Run("Trim", func(t *testing.T) {
		s := NewSet("x", "y", "z")
		r, err := s.Trim([]bool{false, true, false})
		require.NoError(t, err)
		require.Equal(t, []string{"x", "z"}, r.Names())

		_, err = s.Trim([]bool{true})
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
	})
}

func TestMerge(t *testing.T) {
	a := NewSet("b", "d")
	b := NewSet("a", "c", "d", "e", "f")

	merged, insA, insB := Merge(a, b)
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, merged.Names())

	require.Equal(t, []int{0, 1, 2}, insA.Keys())
	require.Equal(t, []string{"a"}, insA[0].Names())
	require.Equal(t, []string{"c"}, insA[1].Names())
	require.Equal(t, []string{"e", "f"}, insA[2].Names())

	require.Equal(t, []int{1}, insB.Keys())
	require.Equal(t, []string{"b"}, insB[1].Names())

	require.Equal(t, []int{0, 7, 0, 2, 0, 0}, Apply(insA, []int{7, 2}))
	require.Equal(t, []int{1, 0, 3, 4, 5, 6}, Apply(insB, []int{1, 3, 4, 5, 6}))

	_, insSame, _ := Merge(a, a)
	require.Empty(t, insSame)
}

func TestMaps(t *testing.T) {

	t.Run("IndexSet", func(t *testing.T) {
		require.Equal(t, IndexSet{1, 3}, NewIndexSet(3, 1, 3))
		require.NoError(t, IndexSet{0, 2}.Check(3))
		require.NoError(t, IndexSet{}.Check(0))
		require.True(t, errors.Is(IndexSet{0, 3}.Check(3), termalg.ErrInvalidArgument))
		require.True(t, errors.Is(IndexSet{2, 1}.Check(3), termalg.ErrInvalidArgument))
		require.True(t, errors.Is(IndexSet{-1}.Check(3), termalg.ErrInvalidArgument))
	})

	t.Run("IndexMap", func(t *testing.T) {
		m := IndexMap[float64]{2: 1.5, 0: 3}
		require.Equal(t, []int{0, 2}, m.Keys())
		require.NoError(t, m.Check(3))
		require.True(t, errors.Is(m.Check(2), termalg.ErrInvalidArgument))
	})

	t.Run("InsertionMap", func(t *testing.T) {
		require.True(t, errors.Is(InsertionMap{}.Check(2), termalg.ErrInvalidArgument))
		require.True(t, errors.Is(InsertionMap{3: NewSet("a")}.Check(2), termalg.ErrInvalidArgument))
		require.NoError(t, InsertionMap{2: NewSet("a")}.Check(2))
	})
}
