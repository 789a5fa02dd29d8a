package rbush

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func lessInt(a, b int) bool { return a < b }

func requireSelected(t *testing.T, arr []int, k int) {
	t.Helper()
	for i := 0; i < k; i++ {
		require.LessOrEqual(t, arr[i], arr[k], "index %d", i)
	}
	for i := k + 1; i < len(arr); i++ {
		require.GreaterOrEqual(t, arr[i], arr[k], "index %d", i)
	}
}

func TestQuickselect(t *testing.T) {
	arr := []int{65, 28, 59, 33, 21, 56, 22, 95, 50, 12, 90, 53, 28, 77, 39}
	quickselect(arr, 8, 0, len(arr)-1, lessInt)

	require.Equal(t, 56, arr[8])
	requireSelected(t, arr, 8)
}

func TestQuickselectRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(2000)
		arr := make([]int, n)
		for i := range arr {
			arr[i] = rng.Intn(n) // plenty of duplicates
		}
		sorted := append([]int(nil), arr...)
		sort.Ints(sorted)

		k := rng.Intn(n)
		quickselect(arr, k, 0, n-1, lessInt)

		require.Equal(t, sorted[k], arr[k])
		requireSelected(t, arr, k)
	}
}

func TestQuickselectSubrange(t *testing.T) {
	arr := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	quickselect(arr, 5, 3, 8, lessInt)

	// Outside [3,8] untouched.
	require.Equal(t, 9, arr[0])
	require.Equal(t, 8, arr[1])
	require.Equal(t, 7, arr[2])
	require.Equal(t, 0, arr[9])

	// arr[5] holds the rank-2 value of {6,5,4,3,2,1}.
	require.Equal(t, 3, arr[5])
}

func TestQuickselectRankOutOfRange(t *testing.T) {
	arr := []int{3, 1, 2}
	require.Panics(t, func() { quickselect(arr, 3, 0, 2, lessInt) })
	require.Panics(t, func() { quickselect(arr, 0, 1, 2, lessInt) })
}

func TestMultiSelect(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, groupSize := range []int{1, 3, 7, 50} {
		n := 500
		arr := make([]int, n)
		for i := range arr {
			arr[i] = rng.Intn(1000)
		}
		multiSelect(arr, 0, n-1, groupSize, lessInt)

		// Every element of a group is <= every element of later groups.
		for start := 0; start < n; start += groupSize {
			end := min(start+groupSize, n)
			groupMax := arr[start]
			for _, v := range arr[start:end] {
				groupMax = max(groupMax, v)
			}
			for _, v := range arr[end:] {
				require.GreaterOrEqual(t, v, groupMax)
			}
		}
	}
}
