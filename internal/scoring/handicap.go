package scoring

import (
	"math"
	"sort"
)

const (
	// StandardSlope is the slope rating of a course of standard difficulty
	StandardSlope = 113.0

	// handicap index window
	maxRecentDifferentials = 20
	bestDifferentials      = 8
	bonusForExcellence     = 0.96
)

// Differential adjusts a gross score for course difficulty.
// A non-positive slope rating is treated as StandardSlope.
func Differential(grossScore, courseRating, slopeRating float64) float64 {
	if slopeRating <= 0 {
		slopeRating = StandardSlope
	}
	return (grossScore - courseRating) * StandardSlope / slopeRating
}

// HandicapIndex computes a handicap index from score differentials ordered newest first.
// Only the 20 most recent are considered and at least 8 are required; the index is the
// average of the best 8 multiplied by 0.96, rounded to one decimal.
func HandicapIndex(differentials []float64) (float64, bool) {
	if len(differentials) > maxRecentDifferentials {
		differentials = differentials[:maxRecentDifferentials]
	}
	if len(differentials) < bestDifferentials {
		return 0, false
	}

	sorted := make([]float64, len(differentials))
	copy(sorted, differentials)
	sort.Float64s(sorted)

	var sum float64
	for _, d := range sorted[:bestDifferentials] {
		sum += d
	}

	index := sum / bestDifferentials * bonusForExcellence
	return math.Round(index*10) / 10, true
}
