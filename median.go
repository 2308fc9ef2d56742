package fcmath

import "golang.org/x/exp/constraints"

// comparePair is one compare-and-swap step of a sorting network: if the
// element at index a exceeds the element at index b, the two are swapped.
type comparePair struct {
	a, b int8
}

// Minimum-comparator median networks for the supported window sizes, after
// N. Devillard, "Fast median search: an ANSI C implementation" (1998).
// Pair order within a table is part of the contract; the 9-element network
// relies on the direction of its trailing (4,2), (6,4), (4,2) steps.
var (
	median3Network = [...]comparePair{{0, 1}, {1, 2}, {0, 1}}

	median5Network = [...]comparePair{
		{0, 1}, {3, 4}, {0, 3}, {1, 4}, {1, 2}, {2, 3}, {1, 2},
	}

	median7Network = [...]comparePair{
		{0, 5}, {0, 3}, {1, 6}, {2, 4}, {0, 1}, {3, 5}, {2, 6},
		{2, 3}, {3, 6}, {4, 5}, {1, 4}, {1, 3}, {3, 4},
	}

	median9Network = [...]comparePair{
		{1, 2}, {4, 5}, {7, 8}, {0, 1}, {3, 4}, {6, 7}, {1, 2},
		{4, 5}, {7, 8}, {0, 3}, {5, 8}, {4, 7}, {3, 6}, {1, 4},
		{2, 5}, {4, 7}, {4, 2}, {6, 4}, {4, 2},
	}
)

// applyNetwork runs a compare-and-swap sequence over p in place.
func applyNetwork[T constraints.Ordered](p []T, network []comparePair) {
	for _, c := range network {
		if p[c.a] > p[c.b] {
			p[c.a], p[c.b] = p[c.b], p[c.a]
		}
	}
}

// QuickMedianFilter3 returns the exact median of the first three elements of
// v, which is left unmodified. The input must hold at least three elements.
func QuickMedianFilter3[T constraints.Ordered](v []T) T {
	var p [3]T
	copy(p[:], v)
	applyNetwork(p[:], median3Network[:])
	return p[1]
}

// QuickMedianFilter5 returns the exact median of the first five elements of
// v, which is left unmodified. The input must hold at least five elements.
func QuickMedianFilter5[T constraints.Ordered](v []T) T {
	var p [5]T
	copy(p[:], v)
	applyNetwork(p[:], median5Network[:])
	return p[2]
}

// QuickMedianFilter7 returns the exact median of the first seven elements of
// v, which is left unmodified. The input must hold at least seven elements.
func QuickMedianFilter7[T constraints.Ordered](v []T) T {
	var p [7]T
	copy(p[:], v)
	applyNetwork(p[:], median7Network[:])
	return p[3]
}

// QuickMedianFilter9 returns the exact median of the first nine elements of
// v, which is left unmodified. The input must hold at least nine elements.
func QuickMedianFilter9[T constraints.Ordered](v []T) T {
	var p [9]T
	copy(p[:], v)
	applyNetwork(p[:], median9Network[:])
	return p[4]
}
