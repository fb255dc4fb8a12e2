package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/Bigyayos/appgolf/internal/models"
)

// resultRepository implements ResultRepository
type resultRepository struct {
	db dbExecutor
}

// NewResultRepository creates a new result repository
func NewResultRepository(db dbExecutor) ResultRepository {
	return &resultRepository{db: db}
}

// Create stores a submitted tournament result
func (r *resultRepository) Create(result *models.Result) error {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	result.CreatedAt = time.Now()

	query := `
		INSERT INTO tournament_results (id, tournament_id, player_name, gross_score, submitted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		result.ID, result.TournamentID, result.PlayerName, result.GrossScore,
		result.SubmittedBy, result.CreatedAt,
	)
	if err != nil {
		return wrapInsertError(err, "result for "+result.PlayerName)
	}
	return nil
}

// GetByTournament lists results in submission order
func (r *resultRepository) GetByTournament(tournamentID uuid.UUID) ([]models.Result, error) {
	query := `
		SELECT id, tournament_id, player_name, gross_score, submitted_by, created_at
		FROM tournament_results
		WHERE tournament_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []models.Result{}
	for rows.Next() {
		var res models.Result
		if err := rows.Scan(&res.ID, &res.TournamentID, &res.PlayerName, &res.GrossScore, &res.SubmittedBy, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}
	return results, nil
}

// scoreRepository implements ScoreRepository
type scoreRepository struct {
	db dbExecutor
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db dbExecutor) ScoreRepository {
	return &scoreRepository{db: db}
}

// Create stores a round for handicap purposes
func (r *scoreRepository) Create(score *models.Score) error {
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	if score.PlayedAt.IsZero() {
		score.PlayedAt = time.Now()
	}

	query := `
		INSERT INTO scores (id, player_id, tournament_id, gross_score, course_rating, slope_rating, differential, played_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query,
		score.ID, score.PlayerID, nullableUUID(score.TournamentID), score.GrossScore,
		score.CourseRating, score.SlopeRating, score.Differential, score.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create score: %w", err)
	}
	return nil
}

// GetRecentByPlayer returns a player's most recent rounds, newest first
func (r *scoreRepository) GetRecentByPlayer(playerID uuid.UUID, limit int) ([]models.Score, error) {
	query := `
		SELECT id, player_id, tournament_id, gross_score, course_rating, slope_rating, differential, played_at
		FROM scores
		WHERE player_id = $1
		ORDER BY played_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	scores := []models.Score{}
	for rows.Next() {
		var s models.Score
		var tournamentID uuid.NullUUID
		err := rows.Scan(&s.ID, &s.PlayerID, &tournamentID, &s.GrossScore, &s.CourseRating, &s.SlopeRating, &s.Differential, &s.PlayedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		if tournamentID.Valid {
			id := tournamentID.UUID
			s.TournamentID = &id
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}
	return scores, nil
}
