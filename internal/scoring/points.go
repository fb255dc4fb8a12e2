package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Category is a tournament tier that determines how many league points it awards
type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
	CategoryC Category = "C"
)

// pointsTable holds league points for finishing positions 1..10
var pointsTable = map[Category][10]int{
	CategoryA: {100, 80, 65, 55, 45, 35, 25, 15, 10, 5},
	CategoryB: {75, 60, 48, 41, 34, 26, 19, 11, 8, 4},
	CategoryC: {50, 40, 32, 27, 22, 17, 12, 7, 5, 2},
}

// ParseCategory parses a tournament category
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := pointsTable[c]; !ok {
		return "", fmt.Errorf("unknown tournament category %q", s)
	}
	return c, nil
}

// TournamentPoints returns the league points for a finishing position.
// Only the top 10 score; an unknown category scores nothing.
func TournamentPoints(position int, category Category) int {
	table, ok := pointsTable[category]
	if !ok || position < 1 || position > len(table) {
		return 0
	}
	return table[position-1]
}

// Standing is a player's position in the league table
type Standing struct {
	Position      int     `json:"position"`
	PlayerName    string  `json:"name"`
	Handicap      float64 `json:"handicap"`
	Victories     int     `json:"victories"`
	RankingPoints int     `json:"ranking_points"`
}

// SortStandings orders the league table by ranking points, then victories, then name,
// and assigns positions. The slice is sorted in place.
func SortStandings(standings []Standing) []Standing {
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].RankingPoints == standings[j].RankingPoints {
			if standings[i].Victories == standings[j].Victories {
				return standings[i].PlayerName < standings[j].PlayerName
			}
			return standings[i].Victories > standings[j].Victories
		}
		return standings[i].RankingPoints > standings[j].RankingPoints
	})
	for i := range standings {
		standings[i].Position = i + 1
	}
	return standings
}
