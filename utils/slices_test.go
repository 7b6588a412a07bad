package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSortedKeys(t *testing.T) {
	m := map[int]int{1: 1, 3: 3, 2: 2}
	require.Equal(t, []int{1, 2, 3}, GetSortedKeys(m))
	m = map[int]int{-1: 1, -3: 3, -2: 2}
	require.Equal(t, []int{-3, -2, -1}, GetSortedKeys(m))
}

func TestGetDistincts(t *testing.T) {
	actual := GetDistincts([]int{1, 2})
	expected := []int{1, 2}
	sort.Ints(expected)
	sort.Ints(actual)
	require.Equal(t, expected, actual)

	actual = GetDistincts([]int{1, 2, 3, 1, 2, 3})
	expected = []int{1, 2, 3}
	sort.Ints(expected)
	sort.Ints(actual)
	require.Equal(t, expected, actual)

	require.Equal(t, []string{"x", "y", "z"}, GetSortedDistincts([]string{"z", "x", "y", "x"}))
}

func TestIsSortedDistinct(t *testing.T) {
	require.True(t, IsSortedDistinct([]int{}))
	require.True(t, IsSortedDistinct([]int{1}))
	require.True(t, IsSortedDistinct([]int{1, 2, 5}))
	require.False(t, IsSortedDistinct([]int{1, 1}))
	require.False(t, IsSortedDistinct([]string{"b", "a"}))
}

func TestInsert(t *testing.T) {
	s := []int{1, 2, 3}
	require.Equal(t, []int{0, 1, 2, 3}, Insert(s, 0, 0))
	require.Equal(t, []int{1, 2, 7, 8, 3}, Insert(s, 2, 7, 8))
	require.Equal(t, []int{1, 2, 3, 4}, Insert(s, 3, 4))
	require.Equal(t, []int{1, 2, 3}, s, "should not modify input slice")
}
