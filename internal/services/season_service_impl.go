package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
)

// seasonServiceImpl implements SeasonService
type seasonServiceImpl struct {
	repos  *repository.Repositories
	logger logger.Logger
}

// newSeasonService creates a new season service implementation
func newSeasonService(repos *repository.Repositories, log logger.Logger) SeasonService {
	return &seasonServiceImpl{repos: repos, logger: log}
}

// List retrieves every season
func (s *seasonServiceImpl) List() ([]models.Season, error) {
	seasons, err := s.repos.Season.GetAll()
	if err != nil {
		return nil, repoError(err, "seasons", "ListSeasons")
	}
	return seasons, nil
}

// Get retrieves a season by ID
func (s *seasonServiceImpl) Get(id string) (*models.Season, error) {
	seasonID, err := parseID(id, "season", "GetSeason")
	if err != nil {
		return nil, err
	}

	season, err := s.repos.Season.GetByID(seasonID)
	if err != nil {
		return nil, repoError(err, "season", "GetSeason")
	}
	return season, nil
}

// Create opens a season
func (s *seasonServiceImpl) Create(req CreateSeasonRequest) (*models.Season, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.ValidationError("season name is required", nil).WithOperation("CreateSeason")
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, errors.ValidationError("start_date must be YYYY-MM-DD", err).WithOperation("CreateSeason")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, errors.ValidationError("end_date must be YYYY-MM-DD", err).WithOperation("CreateSeason")
	}
	if end.Before(start) {
		return nil, errors.ValidationError("end_date cannot be before start_date", nil).WithOperation("CreateSeason")
	}

	season := &models.Season{
		ID:          uuid.New(),
		Name:        name,
		StartDate:   start,
		EndDate:     end,
		Description: strings.TrimSpace(req.Description),
		Status:      models.SeasonActive,
	}

	if err := s.repos.Season.Create(season); err != nil {
		return nil, repoError(err, "season", "CreateSeason")
	}

	s.logger.Info("Season created", "season_id", season.ID, "name", name)
	return season, nil
}

// Update changes a season's name, description or status. Dates are fixed once created.
func (s *seasonServiceImpl) Update(id string, req UpdateSeasonRequest) (*models.Season, error) {
	season, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.ValidationError("season name cannot be empty", nil).WithOperation("UpdateSeason")
		}
		season.Name = name
	}
	if req.Description != nil {
		season.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		if *req.Status != models.SeasonActive && *req.Status != models.SeasonClosed {
			return nil, errors.ValidationError("status must be active or closed", nil).WithOperation("UpdateSeason")
		}
		season.Status = *req.Status
	}

	if err := s.repos.Season.Update(season); err != nil {
		return nil, repoError(err, "season", "UpdateSeason")
	}
	return season, nil
}
