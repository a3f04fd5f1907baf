package model

// combinations returns every subset of the given size, each subset keeps the elements' relative order.
// The number of subsets is C(len(elements), size), so callers must keep size (or len(elements) - size) small
//
// Example:
//
//	combinations([]int64{1, 2, 3}, 2) // [[1 2] [1 3] [2 3]]
func combinations(elements []int64, size int) [][]int64 {
	if size < 0 || size > len(elements) {
		return [][]int64{}
	}

	subsets := make([][]int64, 0)
	generateCombinations(elements, size, 0, make([]int64, 0, size), &subsets)
	return subsets
}

func generateCombinations(
	elements []int64,
	size int,
	currentElement int,
	subset []int64,
	subsets *[][]int64) {

	if len(subset) == size {
		subsetCopy := make([]int64, len(subset))
		copy(subsetCopy, subset)
		*subsets = append(*subsets, subsetCopy)
		return
	}

	// Stop as soon as the remaining elements cannot complete the subset
	for i := currentElement; i <= len(elements)-(size-len(subset)); i++ {
		generateCombinations(elements, size, i+1, append(subset, elements[i]), subsets)
	}
}
