package rbush

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedInsertAndSearch(t *testing.T) {
	ix := NewKeyedIndex[string](9)
	for i := 0; i < 20; i++ {
		f := float64(i)
		box := BBox{MinX: f, MinY: f, MaxX: f + 1, MaxY: f + 1}
		require.NoError(t, ix.Insert(box, fmt.Sprintf("key-%d", i)))
	}
	require.Equal(t, 20, ix.Len())

	keys := ix.Search(BBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2})
	require.ElementsMatch(t, []string{"key-0", "key-1", "key-2"}, keys)
}

func TestKeyedDuplicateKey(t *testing.T) {
	ix := NewKeyedIndex[string](9)
	require.NoError(t, ix.Insert(BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, "a"))

	err := ix.Insert(BBox{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}, "a")
	require.ErrorIs(t, err, ErrDuplicateKey)

	// The rejected element must not have touched the tree.
	require.Equal(t, 1, ix.Len())
	require.Empty(t, ix.Search(BBox{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}))
	require.NoError(t, ix.tree.Check())
}

func TestKeyedLoad(t *testing.T) {
	ix := NewKeyedIndex[int](9)
	var elements []Entry[int]
	for i := 0; i < 30; i++ {
		f := float64(i)
		elements = append(elements, Entry[int]{Box: BBox{MinX: f, MinY: f, MaxX: f, MaxY: f}, Data: i})
	}
	require.NoError(t, ix.Load(elements))
	require.Equal(t, 30, ix.Len())
	require.ElementsMatch(t, []int{3, 4, 5}, ix.Search(BBox{MinX: 3, MinY: 3, MaxX: 5, MaxY: 5}))
}

func TestKeyedLoadRejectsDuplicates(t *testing.T) {
	ix := NewKeyedIndex[int](9)
	require.NoError(t, ix.Insert(BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, 1))

	// Duplicate against the existing index.
	err := ix.Load([]Entry[int]{
		{Box: BBox{MinX: 2, MinY: 2, MaxX: 3, MaxY: 3}, Data: 2},
		{Box: BBox{MinX: 4, MinY: 4, MaxX: 5, MaxY: 5}, Data: 1},
	})
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.Equal(t, 1, ix.Len())
	require.Empty(t, ix.Search(BBox{MinX: 2, MinY: 2, MaxX: 5, MaxY: 5}))

	// Duplicate within the batch itself.
	err = ix.Load([]Entry[int]{
		{Box: BBox{MinX: 2, MinY: 2, MaxX: 3, MaxY: 3}, Data: 7},
		{Box: BBox{MinX: 4, MinY: 4, MaxX: 5, MaxY: 5}, Data: 7},
	})
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.Equal(t, 1, ix.Len())
}

func TestKeyedRemove(t *testing.T) {
	ix := NewKeyedIndex[string](9)
	require.NoError(t, ix.Insert(BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, "a"))
	require.NoError(t, ix.Insert(BBox{MinX: 2, MinY: 2, MaxX: 3, MaxY: 3}, "b"))

	require.True(t, ix.Remove("a"))
	require.False(t, ix.Remove("a"))
	require.False(t, ix.Remove("never-inserted"))

	require.Equal(t, 1, ix.Len())
	require.Empty(t, ix.Search(BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}))
	require.ElementsMatch(t, []string{"b"}, ix.Search(BBox{MinX: 2, MinY: 2, MaxX: 3, MaxY: 3}))
	require.NoError(t, ix.tree.Check())
}
