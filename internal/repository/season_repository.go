package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/Bigyayos/appgolf/internal/models"
)

// seasonRepository implements SeasonRepository
type seasonRepository struct {
	db dbExecutor
}

// NewSeasonRepository creates a new season repository
func NewSeasonRepository(db dbExecutor) SeasonRepository {
	return &seasonRepository{db: db}
}

// GetByID retrieves a season by ID
func (r *seasonRepository) GetByID(id uuid.UUID) (*models.Season, error) {
	query := `
		SELECT id, name, start_date, end_date, description, status, created_at, updated_at
		FROM seasons WHERE id = $1
	`

	s := &models.Season{}
	err := r.db.QueryRow(query, id).Scan(
		&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Description, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("season %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return s, nil
}

// GetAll lists seasons, most recent first
func (r *seasonRepository) GetAll() ([]models.Season, error) {
	query := `
		SELECT id, name, start_date, end_date, description, status, created_at, updated_at
		FROM seasons ORDER BY start_date DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	seasons := []models.Season{}
	for rows.Next() {
		var s models.Season
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Description, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seasons: %w", err)
	}
	return seasons, nil
}

// Create creates a new season
func (r *seasonRepository) Create(s *models.Season) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = models.SeasonActive
	}

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO seasons (id, name, start_date, end_date, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query, s.ID, s.Name, s.StartDate, s.EndDate, s.Description, s.Status, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return wrapInsertError(err, "season "+s.Name)
	}
	return nil
}

// Update updates a season's name, description and status
func (r *seasonRepository) Update(s *models.Season) error {
	s.UpdatedAt = time.Now()

	query := `
		UPDATE seasons SET
			name = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(query, s.ID, s.Name, s.Description, s.Status, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update season: %w", err)
	}
	return expectOneRow(result, "season "+s.ID.String())
}
