package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/Bigyayos/appgolf/internal/models"
)

var (
	// ErrNotFound is wrapped by every lookup that matches no rows
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is wrapped when an insert violates a unique constraint
	ErrDuplicate = errors.New("already exists")
	// ErrStaleState is wrapped when a conditional update finds the row in another state
	ErrStaleState = errors.New("state changed")
)

// PlayerRepository defines the interface for player data access
type PlayerRepository interface {
	GetByID(id uuid.UUID) (*models.Player, error)
	GetByName(name string) (*models.Player, error)
	GetByNames(names []string) ([]models.Player, error)
	GetAll() ([]models.Player, error)
	Create(player *models.Player) error
	Update(player *models.Player) error
	Delete(id uuid.UUID) error

	// League table updates
	AddRankingPoints(id uuid.UUID, points int, victory bool) error
	SetHandicap(id uuid.UUID, handicap float64) error
}

// TournamentRepository defines the interface for tournament data access
type TournamentRepository interface {
	GetByID(id uuid.UUID) (*models.Tournament, error)
	// GetForUpdate reads a tournament and locks its row until the transaction ends
	GetForUpdate(id uuid.UUID) (*models.Tournament, error)
	GetAll(filters TournamentFilters) ([]models.Tournament, error)
	Create(tournament *models.Tournament) error
	Update(tournament *models.Tournament) error
	Delete(id uuid.UUID) error
	// TransitionStatus moves a tournament from one status to another, or fails with ErrStaleState
	TransitionStatus(id uuid.UUID, from, to string) error

	// Registrations
	Register(tournamentID, playerID uuid.UUID) error
	GetRegistrations(tournamentID uuid.UUID) ([]models.Registration, error)
}

// ResultRepository defines the interface for tournament result data access
type ResultRepository interface {
	Create(result *models.Result) error
	GetByTournament(tournamentID uuid.UUID) ([]models.Result, error)
}

// ScoreRepository defines the interface for handicap score history
type ScoreRepository interface {
	Create(score *models.Score) error
	GetRecentByPlayer(playerID uuid.UUID, limit int) ([]models.Score, error)
}

// SeasonRepository defines the interface for season data access
type SeasonRepository interface {
	GetByID(id uuid.UUID) (*models.Season, error)
	GetAll() ([]models.Season, error)
	Create(season *models.Season) error
	Update(season *models.Season) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByPlayerName(playerName string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Player     PlayerRepository
	Tournament TournamentRepository
	Result     ResultRepository
	Score      ScoreRepository
	Season     SeasonRepository
	User       UserRepository
	Tx         TransactionManager
}

// TournamentFilters defines filters for listing tournaments
type TournamentFilters struct {
	SeasonID *uuid.UUID
	Status   string
	Limit    int
	Offset   int
}
