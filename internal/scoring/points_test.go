package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentPoints(t *testing.T) {
	tests := []struct {
		position int
		category Category
		expected int
	}{
		{1, CategoryA, 100},
		{2, CategoryA, 80},
		{10, CategoryA, 5},
		{1, CategoryB, 75},
		{4, CategoryB, 41},
		{1, CategoryC, 50},
		{9, CategoryC, 5},
		{11, CategoryA, 0},
		{0, CategoryA, 0},
		{-1, CategoryB, 0},
		{1, Category("Z"), 0},
	}

	for _, tt := range tests {
		if got := TournamentPoints(tt.position, tt.category); got != tt.expected {
			t.Errorf("TournamentPoints(%d, %s) = %d, want %d", tt.position, tt.category, got, tt.expected)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" b ")
	require.NoError(t, err)
	assert.Equal(t, CategoryB, c)

	_, err = ParseCategory("major")
	assert.Error(t, err)
}

func TestSortStandings(t *testing.T) {
	standings := []Standing{
		{PlayerName: "Diego", RankingPoints: 80, Victories: 0},
		{PlayerName: "Ana", RankingPoints: 100, Victories: 1},
		{PlayerName: "Carlos", RankingPoints: 80, Victories: 1},
		{PlayerName: "Bruno", RankingPoints: 80, Victories: 0},
	}

	got := SortStandings(standings)

	assert.Equal(t, "Ana", got[0].PlayerName)
	assert.Equal(t, "Carlos", got[1].PlayerName)
	assert.Equal(t, "Bruno", got[2].PlayerName)
	assert.Equal(t, "Diego", got[3].PlayerName)
	for i, s := range got {
		assert.Equal(t, i+1, s.Position)
	}
}
