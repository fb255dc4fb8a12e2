package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/Bigyayos/appgolf/internal/models"
)

const tournamentColumns = `id, season_id, name, date, par, course_rating, slope_rating, category, scoring_mode, status, created_at, updated_at`

// tournamentRepository implements TournamentRepository
type tournamentRepository struct {
	db dbExecutor
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db dbExecutor) TournamentRepository {
	return &tournamentRepository{db: db}
}

func scanTournament(row rowScanner) (*models.Tournament, error) {
	t := &models.Tournament{}
	var seasonID uuid.NullUUID
	err := row.Scan(
		&t.ID, &seasonID, &t.Name, &t.Date, &t.Par, &t.CourseRating, &t.SlopeRating,
		&t.Category, &t.ScoringMode, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if seasonID.Valid {
		id := seasonID.UUID
		t.SeasonID = &id
	}
	return t, nil
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// GetByID retrieves a tournament by ID
func (r *tournamentRepository) GetByID(id uuid.UUID) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	t, err := scanTournament(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tournament %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

// GetForUpdate retrieves a tournament and holds its row lock for the rest of the transaction
func (r *tournamentRepository) GetForUpdate(id uuid.UUID) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1 FOR UPDATE`

	t, err := scanTournament(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tournament %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock tournament: %w", err)
	}
	return t, nil
}

// GetAll retrieves tournaments, newest first
func (r *tournamentRepository) GetAll(filters TournamentFilters) ([]models.Tournament, error) {
	var conditions []string
	var args []interface{}

	if filters.SeasonID != nil {
		args = append(args, *filters.SeasonID)
		conditions = append(conditions, fmt.Sprintf("season_id = $%d", len(args)))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + tournamentColumns + ` FROM tournaments`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, name"

	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filters.Offset > 0 {
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := []models.Tournament{}
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		tournaments = append(tournaments, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tournaments: %w", err)
	}
	return tournaments, nil
}

// Create creates a new tournament
func (r *tournamentRepository) Create(t *models.Tournament) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = models.TournamentOpen
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO tournaments (` + tournamentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(query,
		t.ID, nullableUUID(t.SeasonID), t.Name, t.Date, t.Par, t.CourseRating, t.SlopeRating,
		t.Category, t.ScoringMode, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return wrapInsertError(err, "tournament "+t.Name)
	}
	return nil
}

// Update updates a tournament's editable fields
func (r *tournamentRepository) Update(t *models.Tournament) error {
	t.UpdatedAt = time.Now()

	query := `
		UPDATE tournaments SET
			season_id = $2, name = $3, date = $4, par = $5, course_rating = $6,
			slope_rating = $7, category = $8, scoring_mode = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		t.ID, nullableUUID(t.SeasonID), t.Name, t.Date, t.Par, t.CourseRating,
		t.SlopeRating, t.Category, t.ScoringMode, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update tournament: %w", err)
	}
	return expectOneRow(result, "tournament "+t.ID.String())
}

// Delete deletes a tournament with its results and registrations
func (r *tournamentRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	return expectOneRow(result, "tournament "+id.String())
}

// TransitionStatus changes a tournament's lifecycle status only if it is still in from
func (r *tournamentRepository) TransitionStatus(id uuid.UUID, from, to string) error {
	query := `UPDATE tournaments SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`
	result, err := r.db.Exec(query, id, from, to, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set tournament status: %w", err)
	}
	return expectTransition(result, fmt.Sprintf("tournament %s no longer %s", id, from))
}

// Register signs a player up for a tournament
func (r *tournamentRepository) Register(tournamentID, playerID uuid.UUID) error {
	query := `
		INSERT INTO tournament_registrations (tournament_id, player_id, registered_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.Exec(query, tournamentID, playerID, time.Now()); err != nil {
		return wrapInsertError(err, "registration")
	}
	return nil
}

// GetRegistrations lists the players registered for a tournament
func (r *tournamentRepository) GetRegistrations(tournamentID uuid.UUID) ([]models.Registration, error) {
	query := `
		SELECT tr.tournament_id, tr.player_id, p.name, tr.registered_at
		FROM tournament_registrations tr
		JOIN players p ON p.id = tr.player_id
		WHERE tr.tournament_id = $1
		ORDER BY tr.registered_at
	`

	rows, err := r.db.Query(query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	registrations := []models.Registration{}
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(&reg.TournamentID, &reg.PlayerID, &reg.PlayerName, &reg.RegisteredAt); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		registrations = append(registrations, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate registrations: %w", err)
	}
	return registrations, nil
}
