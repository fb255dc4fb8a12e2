package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/scoring"
)

// dateLayout is the calendar date format accepted and returned for tournaments and seasons
const dateLayout = "2006-01-02"

// CreatePlayerRequest represents the request to add a player to the league
type CreatePlayerRequest struct {
	Name            string   `json:"name" binding:"required"`
	InitialHandicap *float64 `json:"initial_handicap"`
}

// UpdatePlayerRequest carries the player fields to change
type UpdatePlayerRequest struct {
	Name     *string  `json:"name"`
	Handicap *float64 `json:"handicap"`
}

// CreateTournamentRequest represents the request to schedule a tournament
type CreateTournamentRequest struct {
	Name         string     `json:"name" binding:"required"`
	Date         string     `json:"date" binding:"required"`
	SeasonID     *uuid.UUID `json:"season_id"`
	Par          float64    `json:"par"`
	CourseRating float64    `json:"course_rating"`
	SlopeRating  float64    `json:"slope_rating"`
	Category     string     `json:"category" binding:"required"`
	ScoringMode  string     `json:"scoring_mode"`
}

// UpdateTournamentRequest carries the tournament fields to change
type UpdateTournamentRequest struct {
	Name         *string    `json:"name"`
	Date         *string    `json:"date"`
	SeasonID     *uuid.UUID `json:"season_id"`
	Par          *float64   `json:"par"`
	CourseRating *float64   `json:"course_rating"`
	SlopeRating  *float64   `json:"slope_rating"`
	Category     *string    `json:"category"`
	ScoringMode  *string    `json:"scoring_mode"`
}

// TournamentDetails is a tournament with its results and registrations
type TournamentDetails struct {
	models.Tournament
	Results       []models.Result       `json:"results"`
	Registrations []models.Registration `json:"registrations"`
}

// SubmitResultRequest is a gross score for a tournament. An empty player name
// means the caller's own player.
type SubmitResultRequest struct {
	PlayerName string  `json:"player_name"`
	GrossScore float64 `json:"gross_score" binding:"required"`
}

// SubmittedResult is a stored result and, when the round counted for handicap,
// the player's handicap afterwards
type SubmittedResult struct {
	Result   models.Result `json:"result"`
	Score    *models.Score `json:"score,omitempty"`
	Handicap *float64      `json:"handicap,omitempty"`
}

// RecordScoreRequest is a round played outside a tournament
type RecordScoreRequest struct {
	PlayerID     uuid.UUID `json:"player_id" binding:"required"`
	GrossScore   float64   `json:"gross_score" binding:"required"`
	CourseRating float64   `json:"course_rating" binding:"required"`
	SlopeRating  float64   `json:"slope_rating" binding:"required"`
}

// RecordedScore is a stored round and the player's handicap afterwards.
// Handicap is nil while the player has fewer than eight rounds.
type RecordedScore struct {
	Score    models.Score `json:"score"`
	Handicap *float64     `json:"handicap,omitempty"`
}

// Leaderboard is a ranked tournament
type Leaderboard struct {
	Tournament models.Tournament `json:"tournament"`
	Mode       scoring.Mode      `json:"mode"`
	Par        float64           `json:"par"`
	Entries    []scoring.Entry   `json:"entries"`
	// players with results but no league record; they rank with handicap 0
	Unresolved []string `json:"unresolved,omitempty"`
}

// CreateSeasonRequest represents the request to open a season
type CreateSeasonRequest struct {
	Name        string `json:"name" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Description string `json:"description"`
}

// UpdateSeasonRequest carries the season fields that may change
type UpdateSeasonRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
