package models

import (
	"time"

	"github.com/google/uuid"
)

// Tournament statuses
const (
	TournamentOpen      = "open"
	TournamentCompleted = "completed"
)

// Season statuses
const (
	SeasonActive = "active"
	SeasonClosed = "closed"
)

// Tournament is a single competition round on one course
type Tournament struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	SeasonID     *uuid.UUID `json:"season_id,omitempty" db:"season_id"`
	Name         string     `json:"name" db:"name"`
	Date         time.Time  `json:"date" db:"date"`
	Par          float64    `json:"par" db:"par"`
	CourseRating float64    `json:"course_rating" db:"course_rating"`
	SlopeRating  float64    `json:"slope_rating" db:"slope_rating"`
	Category     string     `json:"category" db:"category"`
	ScoringMode  string     `json:"scoring_mode" db:"scoring_mode"`
	Status       string     `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// IsCompleted returns true once league points have been awarded
func (t *Tournament) IsCompleted() bool {
	return t.Status == TournamentCompleted
}

// HasCourseRatings returns true if rounds on this tournament can feed the handicap
func (t *Tournament) HasCourseRatings() bool {
	return t.CourseRating > 0 && t.SlopeRating > 0
}

// Result is a gross score submitted for a tournament
type Result struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TournamentID uuid.UUID `json:"tournament_id" db:"tournament_id"`
	PlayerName   string    `json:"player_name" db:"player_name"`
	GrossScore   float64   `json:"gross_score" db:"gross_score"`
	SubmittedBy  string    `json:"submitted_by,omitempty" db:"submitted_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Registration records a player signing up for a tournament
type Registration struct {
	TournamentID uuid.UUID `json:"tournament_id" db:"tournament_id"`
	PlayerID     uuid.UUID `json:"player_id" db:"player_id"`
	PlayerName   string    `json:"player_name" db:"player_name"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
}

// Season groups tournaments over a date range
type Season struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	Description string    `json:"description,omitempty" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
