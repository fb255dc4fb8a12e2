package services

import (
	stderrors "errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/auth"
	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
	"github.com/Bigyayos/appgolf/internal/scoring"
	"github.com/Bigyayos/appgolf/pkg/config"
)

// tournamentServiceImpl implements TournamentService
type tournamentServiceImpl struct {
	repos      *repository.Repositories
	defaultPar float64
	logger     logger.Logger
}

// newTournamentService creates a new tournament service implementation
func newTournamentService(repos *repository.Repositories, cfg *config.Config, log logger.Logger) TournamentService {
	return &tournamentServiceImpl{
		repos:      repos,
		defaultPar: scoring.NormalizePar(cfg.DefaultPar),
		logger:     log,
	}
}

// List retrieves tournaments with filters
func (s *tournamentServiceImpl) List(filters repository.TournamentFilters) ([]models.Tournament, error) {
	if filters.Status != "" && filters.Status != models.TournamentOpen && filters.Status != models.TournamentCompleted {
		return nil, errors.InvalidInput("unknown tournament status", nil).WithDetails(filters.Status)
	}

	tournaments, err := s.repos.Tournament.GetAll(filters)
	if err != nil {
		s.logger.Error("Failed to list tournaments", err)
		return nil, repoError(err, "tournaments", "ListTournaments")
	}
	return tournaments, nil
}

// Get retrieves a tournament with its results and registrations
func (s *tournamentServiceImpl) Get(id string) (*TournamentDetails, error) {
	tournamentID, err := parseID(id, "tournament", "GetTournament")
	if err != nil {
		return nil, err
	}

	tournament, err := s.repos.Tournament.GetByID(tournamentID)
	if err != nil {
		return nil, repoError(err, "tournament", "GetTournament")
	}

	results, err := s.repos.Result.GetByTournament(tournamentID)
	if err != nil {
		return nil, repoError(err, "results", "GetTournament")
	}

	registrations, err := s.repos.Tournament.GetRegistrations(tournamentID)
	if err != nil {
		return nil, repoError(err, "registrations", "GetTournament")
	}

	return &TournamentDetails{
		Tournament:    *tournament,
		Results:       results,
		Registrations: registrations,
	}, nil
}

// Create schedules a tournament
func (s *tournamentServiceImpl) Create(req CreateTournamentRequest) (*models.Tournament, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.ValidationError("tournament name is required", nil).WithOperation("CreateTournament")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, errors.ValidationError("date must be YYYY-MM-DD", err).WithOperation("CreateTournament")
	}

	tournament := &models.Tournament{
		ID:           uuid.New(),
		SeasonID:     req.SeasonID,
		Name:         name,
		Date:         date,
		Par:          req.Par,
		CourseRating: req.CourseRating,
		SlopeRating:  req.SlopeRating,
		Category:     req.Category,
		ScoringMode:  req.ScoringMode,
		Status:       models.TournamentOpen,
	}
	if err := s.normalize(tournament); err != nil {
		return nil, err.WithOperation("CreateTournament")
	}
	if err := s.checkSeason(tournament.SeasonID); err != nil {
		return nil, err
	}

	if err := s.repos.Tournament.Create(tournament); err != nil {
		s.logger.Error("Failed to create tournament", err, "name", name)
		return nil, repoError(err, "tournament", "CreateTournament")
	}

	s.logger.Info("Tournament created", "tournament_id", tournament.ID, "name", name, "category", tournament.Category)
	return tournament, nil
}

// Update changes tournament details. Completed tournaments are frozen.
func (s *tournamentServiceImpl) Update(id string, req UpdateTournamentRequest) (*models.Tournament, error) {
	tournamentID, err := parseID(id, "tournament", "UpdateTournament")
	if err != nil {
		return nil, err
	}

	tournament, err := s.repos.Tournament.GetByID(tournamentID)
	if err != nil {
		return nil, repoError(err, "tournament", "UpdateTournament")
	}
	if tournament.IsCompleted() {
		return nil, errors.Conflict("tournament is already completed", nil).WithOperation("UpdateTournament")
	}

	if req.Name != nil {
		tournament.Name = strings.TrimSpace(*req.Name)
		if tournament.Name == "" {
			return nil, errors.ValidationError("tournament name cannot be empty", nil).WithOperation("UpdateTournament")
		}
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, errors.ValidationError("date must be YYYY-MM-DD", err).WithOperation("UpdateTournament")
		}
		tournament.Date = date
	}
	if req.SeasonID != nil {
		tournament.SeasonID = req.SeasonID
	}
	if req.Par != nil {
		tournament.Par = *req.Par
	}
	if req.CourseRating != nil {
		tournament.CourseRating = *req.CourseRating
	}
	if req.SlopeRating != nil {
		tournament.SlopeRating = *req.SlopeRating
	}
	if req.Category != nil {
		tournament.Category = *req.Category
	}
	if req.ScoringMode != nil {
		tournament.ScoringMode = *req.ScoringMode
	}

	if err := s.normalize(tournament); err != nil {
		return nil, err.WithOperation("UpdateTournament")
	}
	if err := s.checkSeason(tournament.SeasonID); err != nil {
		return nil, err
	}

	if err := s.repos.Tournament.Update(tournament); err != nil {
		return nil, repoError(err, "tournament", "UpdateTournament")
	}
	return tournament, nil
}

// Delete removes a tournament with its results and registrations
func (s *tournamentServiceImpl) Delete(id string) error {
	tournamentID, err := parseID(id, "tournament", "DeleteTournament")
	if err != nil {
		return err
	}

	if err := s.repos.Tournament.Delete(tournamentID); err != nil {
		return repoError(err, "tournament", "DeleteTournament")
	}

	s.logger.Info("Tournament deleted", "tournament_id", tournamentID)
	return nil
}

// Register signs a player up for a tournament. An empty player name registers the
// caller's own player; only super admins may register someone else.
func (s *tournamentServiceImpl) Register(principal auth.Principal, id, playerName string) (*models.Registration, error) {
	tournamentID, err := parseID(id, "tournament", "RegisterPlayer")
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(playerName)
	if name == "" {
		name = principal.PlayerName
	}
	if name == "" {
		return nil, errors.ValidationError("player_name is required", nil).WithOperation("RegisterPlayer")
	}
	if !principal.CanSubmitFor(name) {
		return nil, errors.Forbidden("cannot register another player", nil).WithOperation("RegisterPlayer")
	}

	tournament, err := s.repos.Tournament.GetByID(tournamentID)
	if err != nil {
		return nil, repoError(err, "tournament", "RegisterPlayer")
	}
	if tournament.IsCompleted() {
		return nil, errors.Conflict("tournament is already completed", nil).WithOperation("RegisterPlayer")
	}

	player, err := s.repos.Player.GetByName(name)
	if err != nil {
		return nil, repoError(err, "player", "RegisterPlayer")
	}

	if err := s.repos.Tournament.Register(tournamentID, player.ID); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.Conflict("player is already registered", err).WithOperation("RegisterPlayer")
		}
		return nil, repoError(err, "registration", "RegisterPlayer")
	}

	s.logger.Info("Player registered", "tournament_id", tournamentID, "player", name)

	return &models.Registration{
		TournamentID: tournamentID,
		PlayerID:     player.ID,
		PlayerName:   player.Name,
	}, nil
}

// normalize validates category and scoring mode and fills in the default par
func (s *tournamentServiceImpl) normalize(t *models.Tournament) *errors.AppError {
	category, err := scoring.ParseCategory(t.Category)
	if err != nil {
		return errors.ValidationError("category must be A, B or C", err)
	}
	t.Category = string(category)

	mode, err := scoring.ParseMode(t.ScoringMode)
	if err != nil {
		return errors.ValidationError("scoring_mode must be medal or stableford", err)
	}
	t.ScoringMode = string(mode)

	if t.Par <= 0 {
		t.Par = s.defaultPar
	}
	if t.CourseRating < 0 || t.SlopeRating < 0 {
		return errors.ValidationError("course and slope ratings cannot be negative", nil)
	}
	return nil
}

func (s *tournamentServiceImpl) checkSeason(seasonID *uuid.UUID) error {
	if seasonID == nil {
		return nil
	}
	if _, err := s.repos.Season.GetByID(*seasonID); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.ValidationError("season does not exist", err).WithOperation("CheckSeason")
		}
		return repoError(err, "season", "CheckSeason")
	}
	return nil
}
