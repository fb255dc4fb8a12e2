package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifferential(t *testing.T) {
	assert.InDelta(t, 13.0, Differential(85, 72, 113), 1e-9)
	assert.InDelta(t, 11.3, Differential(82, 71, 110), 1e-9)
	// missing slope falls back to the standard slope
	assert.InDelta(t, 13.0, Differential(85, 72, 0), 1e-9)
	assert.InDelta(t, -2.0, Differential(70, 72, 113), 1e-9)
}

func TestHandicapIndex_NotEnoughScores(t *testing.T) {
	_, ok := HandicapIndex([]float64{10, 12, 14, 9, 11, 13, 15})
	assert.False(t, ok)

	_, ok = HandicapIndex(nil)
	assert.False(t, ok)
}

func TestHandicapIndex_BestEight(t *testing.T) {
	diffs := []float64{10, 10, 10, 10, 10, 10, 10, 10, 30, 40}

	index, ok := HandicapIndex(diffs)
	assert.True(t, ok)
	assert.Equal(t, 9.6, index)
}

func TestHandicapIndex_OnlyTwentyMostRecent(t *testing.T) {
	diffs := make([]float64, 0, 25)
	for i := 0; i < 20; i++ {
		diffs = append(diffs, 20)
	}
	// older rounds beyond the window would otherwise pull the index down
	for i := 0; i < 5; i++ {
		diffs = append(diffs, 0)
	}

	index, ok := HandicapIndex(diffs)
	assert.True(t, ok)
	assert.Equal(t, 19.2, index)
}

func TestHandicapIndex_DoesNotReorderInput(t *testing.T) {
	diffs := []float64{5, 4, 3, 2, 1, 0, 9, 8}
	before := append([]float64(nil), diffs...)

	_, ok := HandicapIndex(diffs)
	assert.True(t, ok)
	assert.Equal(t, before, diffs)
}
