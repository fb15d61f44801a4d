package sheet

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabulago/tabula/pkg/column"
)

// applySwaps executes a resolved swap chain on a reference slice.
func applySwaps(indices []int, ref []int) {
	for pos, elem := range indices {
		ref[pos], ref[elem] = ref[elem], ref[pos]
	}
}

func TestResolveIndexSwapsKnown(t *testing.T) {
	// argsort of [30 10 20] is [1 2 0]; its swap chain is [1 2 2].
	indices := []int{1, 2, 0}
	resolveIndexSwaps(indices)
	assert.Equal(t, []int{1, 2, 2}, indices)

	ref := []int{30, 10, 20}
	applySwaps(indices, ref)
	assert.Equal(t, []int{10, 20, 30}, ref)
}

func TestResolveIndexSwapsIdentity(t *testing.T) {
	indices := []int{0, 1, 2, 3}
	resolveIndexSwaps(indices)
	assert.Equal(t, []int{0, 1, 2, 3}, indices)

	resolveIndexSwaps(nil)
}

// For any permutation, resolving it and executing the swaps must equal
// directly indexing the reference by the permutation.
func TestResolveIndexSwapsRandomPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(64)
		perm := rng.Perm(n)

		ref := make([]int, n)
		for i := range ref {
			ref[i] = rng.Int()
		}

		want := make([]int, n)
		for i, p := range perm {
			want[i] = ref[p]
		}

		indices := make([]int, n)
		copy(indices, perm)
		resolveIndexSwaps(indices)

		got := make([]int, n)
		copy(got, ref)
		applySwaps(indices, got)

		assert.Equal(t, want, got, "permutation %v", perm)
	}
}

func TestResolveIndexSwapsSortsRandomVectors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(1000)
		vec := make([]int, n)
		for i := range vec {
			vec[i] = rng.Intn(50) // duplicates on purpose
		}

		sorted := make([]int, n)
		copy(sorted, vec)
		sort.Ints(sorted)

		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		sort.SliceStable(indices, func(i, j int) bool {
			return vec[indices[i]] < vec[indices[j]]
		})

		resolveIndexSwaps(indices)
		applySwaps(indices, vec)
		assert.Equal(t, sorted, vec)
	}
}

func TestArgsortStable(t *testing.T) {
	cells := []column.Cell{
		column.I32Cell(2), column.I32Cell(1),
		column.I32Cell(2), column.I32Cell(1),
	}
	indices := argsort(len(cells), false, func(i int) column.Cell { return cells[i] })
	assert.Equal(t, []int{1, 3, 0, 2}, indices)
}
