package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/Bigyayos/appgolf/internal/models"
)

const playerColumns = `id, name, handicap, victories, ranking_points, created_at, updated_at`

// playerRepository implements PlayerRepository
type playerRepository struct {
	db dbExecutor
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db dbExecutor) PlayerRepository {
	return &playerRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	p := &models.Player{}
	err := row.Scan(&p.ID, &p.Name, &p.Handicap, &p.Victories, &p.RankingPoints, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID retrieves a player by ID
func (r *playerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	player, err := scanPlayer(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetByName retrieves a player by exact name
func (r *playerRepository) GetByName(name string) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE name = $1`

	player, err := scanPlayer(r.db.QueryRow(query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetByNames retrieves every player whose name is in names. Unknown names are skipped.
func (r *playerRepository) GetByNames(names []string) ([]models.Player, error) {
	if len(names) == 0 {
		return []models.Player{}, nil
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE name = ANY($1)`
	return r.queryPlayers(query, pq.Array(names))
}

// GetAll retrieves all players ordered by name
func (r *playerRepository) GetAll() ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY name`
	return r.queryPlayers(query)
}

func (r *playerRepository) queryPlayers(query string, args ...interface{}) ([]models.Player, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// Create creates a new player
func (r *playerRepository) Create(player *models.Player) error {
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}

	now := time.Now()
	player.CreatedAt = now
	player.UpdatedAt = now

	query := `
		INSERT INTO players (id, name, handicap, victories, ranking_points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		player.ID, player.Name, player.Handicap, player.Victories, player.RankingPoints,
		player.CreatedAt, player.UpdatedAt,
	)
	if err != nil {
		return wrapInsertError(err, "player "+player.Name)
	}
	return nil
}

// Update updates an existing player's profile fields
func (r *playerRepository) Update(player *models.Player) error {
	player.UpdatedAt = time.Now()

	query := `
		UPDATE players SET
			name = $2, handicap = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(query, player.ID, player.Name, player.Handicap, player.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("player %s: %w", player.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to update player: %w", err)
	}
	return expectOneRow(result, "player "+player.ID.String())
}

// Delete deletes a player
func (r *playerRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return expectOneRow(result, "player "+id.String())
}

// AddRankingPoints adds league points and optionally a victory
func (r *playerRepository) AddRankingPoints(id uuid.UUID, points int, victory bool) error {
	wins := 0
	if victory {
		wins = 1
	}

	query := `
		UPDATE players SET
			ranking_points = ranking_points + $2,
			victories = victories + $3,
			updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(query, id, points, wins, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add ranking points: %w", err)
	}
	return expectOneRow(result, "player "+id.String())
}

// SetHandicap stores a recomputed handicap index
func (r *playerRepository) SetHandicap(id uuid.UUID, handicap float64) error {
	result, err := r.db.Exec(`UPDATE players SET handicap = $2, updated_at = $3 WHERE id = $1`, id, handicap, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set handicap: %w", err)
	}
	return expectOneRow(result, "player "+id.String())
}
