package services

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
)

// handicap indexes outside this range are rejected
const (
	minHandicap = -10.0
	maxHandicap = 54.0
)

// playerServiceImpl implements PlayerService
type playerServiceImpl struct {
	repos  *repository.Repositories
	logger logger.Logger
}

// newPlayerService creates a new player service implementation
func newPlayerService(repos *repository.Repositories, log logger.Logger) PlayerService {
	return &playerServiceImpl{
		repos:  repos,
		logger: log,
	}
}

// List retrieves every player
func (s *playerServiceImpl) List() ([]models.Player, error) {
	players, err := s.repos.Player.GetAll()
	if err != nil {
		s.logger.Error("Failed to list players", err)
		return nil, repoError(err, "players", "ListPlayers")
	}
	return players, nil
}

// Get retrieves a player by ID
func (s *playerServiceImpl) Get(id string) (*models.Player, error) {
	playerID, err := parseID(id, "player", "GetPlayer")
	if err != nil {
		return nil, err
	}

	player, err := s.repos.Player.GetByID(playerID)
	if err != nil {
		return nil, repoError(err, "player", "GetPlayer")
	}
	return player, nil
}

// GetByName retrieves a player by exact name
func (s *playerServiceImpl) GetByName(name string) (*models.Player, error) {
	player, err := s.repos.Player.GetByName(strings.TrimSpace(name))
	if err != nil {
		return nil, repoError(err, "player", "GetPlayerByName")
	}
	return player, nil
}

// Create adds a player to the league
func (s *playerServiceImpl) Create(req CreatePlayerRequest) (*models.Player, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.ValidationError("player name is required", nil).WithOperation("CreatePlayer")
	}

	var handicap float64
	if req.InitialHandicap != nil {
		handicap = *req.InitialHandicap
		if err := validateHandicap(handicap); err != nil {
			return nil, err.WithOperation("CreatePlayer")
		}
	}

	player := &models.Player{
		ID:       uuid.New(),
		Name:     name,
		Handicap: handicap,
	}

	if err := s.repos.Player.Create(player); err != nil {
		s.logger.Warn("Failed to create player", "name", name, "error", err)
		return nil, repoError(err, "player", "CreatePlayer")
	}

	s.logger.Info("Player created", "player_id", player.ID, "name", name)
	return player, nil
}

// Update changes a player's name or handicap
func (s *playerServiceImpl) Update(id string, req UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.ValidationError("player name cannot be empty", nil).WithOperation("UpdatePlayer")
		}
		player.Name = name
	}
	if req.Handicap != nil {
		if err := validateHandicap(*req.Handicap); err != nil {
			return nil, err.WithOperation("UpdatePlayer")
		}
		player.Handicap = *req.Handicap
	}

	if err := s.repos.Player.Update(player); err != nil {
		return nil, repoError(err, "player", "UpdatePlayer")
	}
	return player, nil
}

// Delete removes a player and their handicap history
func (s *playerServiceImpl) Delete(id string) error {
	playerID, err := parseID(id, "player", "DeletePlayer")
	if err != nil {
		return err
	}

	if err := s.repos.Player.Delete(playerID); err != nil {
		return repoError(err, "player", "DeletePlayer")
	}

	s.logger.Info("Player deleted", "player_id", playerID)
	return nil
}

func validateHandicap(h float64) *errors.AppError {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < minHandicap || h > maxHandicap {
		return errors.ValidationError("handicap must be between -10 and 54", nil)
	}
	return nil
}
