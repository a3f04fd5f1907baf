package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesDeterministic(t *testing.T) {
	// Arrange
	scenarios := [][]uint64{
		{1, 1},
		{3, 4},
		{4, 8},
		{10, 90},
		{7, 3},
	}

	for _, scenario := range scenarios {
		var Teams uint64 = scenario[0]
		var Days uint64 = scenario[1]

		// Act
		indexer := newIndexer(Teams, Days)

		// Assert
		for day := range Days {
			for home := range Teams {
				for away := range Teams {
					index := indexer.Index(day, home, away)
					decodedDay, decodedHome, decodedAway := indexer.Attributes(index)
					assert.Equal(t, [3]uint64{day, home, away}, [3]uint64{decodedDay, decodedHome, decodedAway})
				}
			}
		}
	}
}

func TestIndexAndAttributesNonDeterministic(t *testing.T) {
	for range 10 {
		// Arrange
		var Teams uint64 = uint64(rand.Intn(20) + 1)
		var Days uint64 = uint64(rand.Intn(40) + 1)

		// Act
		indexer := newIndexer(Teams, Days)

		// Assert
		for index := uint64(1); index <= indexer.Variables(); index++ {
			day, home, away := indexer.Attributes(index)
			assert.Equal(t, index, indexer.Index(day, home, away))
		}
	}
}

func TestIndexFormula(t *testing.T) {
	indexer := newIndexer(3, 4)

	assert.Equal(t, uint64(1), indexer.Index(0, 0, 0))
	assert.Equal(t, uint64(2*9+1*3+2+1), indexer.Index(2, 1, 2))
	assert.Equal(t, uint64(36), indexer.Index(3, 2, 2))
	assert.Equal(t, uint64(36), indexer.Variables())
}

func TestIntegerConstraints(t *testing.T) {
	for range 10 {
		// Arrange
		var Teams uint64 = uint64(rand.Intn(12) + 1)
		var Days uint64 = uint64(rand.Intn(30) + 1)

		// Act
		indexer := newIndexer(Teams, Days)

		indices := make([]uint64, 0, Teams*Teams*Days)
		for day := range Days {
			for home := range Teams {
				for away := range Teams {
					indices = append(indices, indexer.Index(day, home, away))
				}
			}
		}

		slices.Sort(indices)

		// Assert
		for i, index := range indices {
			if i == 0 {
				// First index should be 1
				assert.Equal(t, uint64(1), index)
				continue
			}

			// Each index should be one more than the previous index
			assert.Equal(t, indices[i-1]+1, index)
		}
		assert.Equal(t, indexer.Variables(), indices[len(indices)-1])
	}
}

func TestIndexOutOfRange(t *testing.T) {
	indexer := newIndexer(3, 4)

	assert.Panics(t, func() { indexer.Index(4, 0, 1) })
	assert.Panics(t, func() { indexer.Index(0, 3, 1) })
	assert.Panics(t, func() { indexer.Index(0, 1, 3) })
	assert.Panics(t, func() { indexer.Attributes(0) })
	assert.Panics(t, func() { indexer.Attributes(37) })
	assert.Panics(t, func() { newIndexer(0, 4) })
	assert.Panics(t, func() { newIndexer(3, 0) })
}
