package scoring

import (
	"fmt"
	"math"
	"strings"
)

// DefaultPar is the course par used when a tournament does not specify one
const DefaultPar = 72.0

// Mode selects how a gross score is turned into ranking points
type Mode string

const (
	// ModeMedal ranks by net strokes, lower is better
	ModeMedal Mode = "medal"
	// ModeStableford ranks by points against par, higher is better
	ModeStableford Mode = "stableford"
)

// ParseMode parses a scoring mode name. An empty name selects medal play.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeMedal:
		return ModeMedal, nil
	case ModeStableford:
		return ModeStableford, nil
	default:
		return "", fmt.Errorf("unknown scoring mode %q", s)
	}
}

// HigherIsBetter reports whether larger point values rank first
func (m Mode) HigherIsBetter() bool {
	return m == ModeStableford
}

// NormalizePar returns par, or DefaultPar when par is missing or not a usable number
func NormalizePar(par float64) float64 {
	if par <= 0 || math.IsNaN(par) || math.IsInf(par, 0) {
		return DefaultPar
	}
	return par
}

// Calculator converts a single gross score into points
type Calculator struct{}

// NewCalculator creates a new calculator instance
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Stableford returns the Stableford points for a round.
// Only exact differences of -1, 0 and 1 earn 3, 2 and 1 points; anything at or below -2
// earns 4 and everything else earns nothing.
func (c *Calculator) Stableford(grossScore, par, handicap float64) int {
	diff := (grossScore - handicap) - par

	switch {
	case diff <= -2:
		return 4 // eagle or better
	case diff == -1:
		return 3 // birdie
	case diff == 0:
		return 2 // par
	case diff == 1:
		return 1 // bogey
	default:
		return 0
	}
}

// Medal returns the net score for stroke play
func (c *Calculator) Medal(grossScore, handicap float64) float64 {
	return grossScore - handicap
}

// Points computes the ranking value of a round under the given mode
func (c *Calculator) Points(mode Mode, grossScore, par, handicap float64) float64 {
	if mode == ModeStableford {
		return float64(c.Stableford(grossScore, NormalizePar(par), handicap))
	}
	return c.Medal(grossScore, handicap)
}
