package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is a league member
type Player struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Handicap      float64   `json:"handicap" db:"handicap"`
	Victories     int       `json:"victories" db:"victories"`
	RankingPoints int       `json:"ranking_points" db:"ranking_points"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Score is a round kept for handicap calculation
type Score struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	PlayerID     uuid.UUID  `json:"player_id" db:"player_id"`
	TournamentID *uuid.UUID `json:"tournament_id,omitempty" db:"tournament_id"`
	GrossScore   float64    `json:"gross_score" db:"gross_score"`
	CourseRating float64    `json:"course_rating" db:"course_rating"`
	SlopeRating  float64    `json:"slope_rating" db:"slope_rating"`
	Differential float64    `json:"differential" db:"differential"`
	PlayedAt     time.Time  `json:"played_at" db:"played_at"`
}
