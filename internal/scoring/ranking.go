package scoring

import (
	"sort"
)

// Score is one submitted round
type Score struct {
	PlayerName string  `json:"player_name"`
	GrossScore float64 `json:"gross_score"`
}

// Player is the part of a player record the ranking needs
type Player struct {
	Name     string   `json:"name"`
	Handicap *float64 `json:"handicap,omitempty"`
}

// Entry is one row of a computed ranking
type Entry struct {
	Position   int     `json:"position"`
	PlayerName string  `json:"player_name"`
	GrossScore float64 `json:"gross_score"`
	Handicap   float64 `json:"handicap"`
	NetScore   float64 `json:"net_score"`
	Points     float64 `json:"points"`
}

// RankingBuilder orders a set of scores into a ranking
type RankingBuilder struct {
	calc *Calculator
}

// NewRankingBuilder creates a new ranking builder
func NewRankingBuilder() *RankingBuilder {
	return &RankingBuilder{calc: NewCalculator()}
}

// PlayersByName indexes players by name. Later duplicates win.
func PlayersByName(players []Player) map[string]Player {
	index := make(map[string]Player, len(players))
	for _, p := range players {
		index[p.Name] = p
	}
	return index
}

// Build ranks scores under mode. Scores whose player is unknown, or has no handicap,
// are ranked with a handicap of 0. A par of zero or less means DefaultPar.
//
// Ties on points are broken by lower gross score, then player name, then input order.
func (b *RankingBuilder) Build(scores []Score, players map[string]Player, mode Mode, par float64) []Entry {
	par = NormalizePar(par)
	entries := make([]Entry, 0, len(scores))

	for _, s := range scores {
		handicap := resolveHandicap(players, s.PlayerName)
		entries = append(entries, Entry{
			PlayerName: s.PlayerName,
			GrossScore: s.GrossScore,
			Handicap:   handicap,
			NetScore:   s.GrossScore - handicap,
			Points:     b.calc.Points(mode, s.GrossScore, par, handicap),
		})
	}

	higherFirst := mode.HigherIsBetter()
	sort.SliceStable(entries, func(i, j int) bool {
		a, c := entries[i], entries[j]
		if a.Points != c.Points {
			if higherFirst {
				return a.Points > c.Points
			}
			return a.Points < c.Points
		}
		if a.GrossScore != c.GrossScore {
			return a.GrossScore < c.GrossScore
		}
		return a.PlayerName < c.PlayerName
	})

	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries
}

// Unresolved returns the names in scores that have no entry in players
func Unresolved(scores []Score, players map[string]Player) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, s := range scores {
		if _, ok := players[s.PlayerName]; ok || seen[s.PlayerName] {
			continue
		}
		seen[s.PlayerName] = true
		missing = append(missing, s.PlayerName)
	}
	return missing
}

func resolveHandicap(players map[string]Player, name string) float64 {
	p, ok := players[name]
	if !ok || p.Handicap == nil {
		return 0
	}
	return *p.Handicap
}
