package services

import (
	stderrors "errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/auth"
	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/metrics"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
	"github.com/Bigyayos/appgolf/internal/scoring"
)

// recentScoresWindow is how many rounds feed the handicap index
const recentScoresWindow = 20

// resultServiceImpl implements ResultService
type resultServiceImpl struct {
	repos   *repository.Repositories
	logger  logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// newResultService creates a new result service implementation
func newResultService(repos *repository.Repositories, log logger.Logger, m *metrics.Metrics) ResultService {
	return &resultServiceImpl{
		repos:   repos,
		logger:  log,
		metrics: m,
		now:     time.Now,
	}
}

// Submit stores a gross score for a tournament. When the player is known and the
// tournament has course ratings, the round also counts towards their handicap.
// Everything happens in one transaction.
func (s *resultServiceImpl) Submit(principal auth.Principal, tournamentID string, req SubmitResultRequest) (*SubmittedResult, error) {
	id, err := parseID(tournamentID, "tournament", "SubmitResult")
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		name = principal.PlayerName
	}
	if name == "" {
		return nil, errors.ValidationError("player_name is required", nil).WithOperation("SubmitResult")
	}
	if !principal.CanSubmitFor(name) {
		s.logger.Warn("Result submission denied", "user", principal.Email, "player", name)
		return nil, errors.Forbidden("cannot submit results for another player", nil).WithOperation("SubmitResult")
	}
	if err := validateGross(req.GrossScore); err != nil {
		return nil, err.WithOperation("SubmitResult")
	}

	var submitted *SubmittedResult
	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		tournament, err := repos.Tournament.GetForUpdate(id)
		if err != nil {
			return repoError(err, "tournament", "SubmitResult")
		}
		if tournament.IsCompleted() {
			return errors.Conflict("tournament is already completed", nil).WithOperation("SubmitResult")
		}

		existing, err := repos.Result.GetByTournament(id)
		if err != nil {
			return repoError(err, "results", "SubmitResult")
		}
		for _, r := range existing {
			if r.PlayerName == name {
				return errors.Conflict("result already submitted for "+name, nil).WithOperation("SubmitResult")
			}
		}

		result := models.Result{
			ID:           uuid.New(),
			TournamentID: id,
			PlayerName:   name,
			GrossScore:   req.GrossScore,
			SubmittedBy:  principal.Email,
			CreatedAt:    s.now(),
		}
		if err := repos.Result.Create(&result); err != nil {
			if stderrors.Is(err, repository.ErrDuplicate) {
				return errors.Conflict("result already submitted for "+name, err).WithOperation("SubmitResult")
			}
			return repoError(err, "result", "SubmitResult")
		}
		submitted = &SubmittedResult{Result: result}

		if !tournament.HasCourseRatings() {
			return nil
		}

		player, err := repos.Player.GetByName(name)
		if stderrors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("Result for unregistered player, handicap unchanged", "player", name)
			return nil
		}
		if err != nil {
			return repoError(err, "player", "SubmitResult")
		}

		recorded, err := recordScore(repos, player.ID, &tournament.ID, req.GrossScore, tournament.CourseRating, tournament.SlopeRating, s.now())
		if err != nil {
			return err
		}
		submitted.Score = &recorded.Score
		submitted.Handicap = recorded.Handicap
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ResultsSubmitted.Inc()
	s.logger.Info("Result submitted", "tournament_id", id, "player", name, "gross", req.GrossScore, "by", principal.Email)
	return submitted, nil
}

// scoreServiceImpl implements ScoreService
type scoreServiceImpl struct {
	repos  *repository.Repositories
	logger logger.Logger
	now    func() time.Time
}

// newScoreService creates a new score service implementation
func newScoreService(repos *repository.Repositories, log logger.Logger) ScoreService {
	return &scoreServiceImpl{
		repos:  repos,
		logger: log,
		now:    time.Now,
	}
}

// Record stores a round for a player and recomputes their handicap index
func (s *scoreServiceImpl) Record(req RecordScoreRequest) (*RecordedScore, error) {
	if err := validateGross(req.GrossScore); err != nil {
		return nil, err.WithOperation("RecordScore")
	}
	if req.CourseRating <= 0 || req.SlopeRating <= 0 {
		return nil, errors.ValidationError("course_rating and slope_rating must be positive", nil).WithOperation("RecordScore")
	}

	var recorded *RecordedScore
	err := s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		if _, err := repos.Player.GetByID(req.PlayerID); err != nil {
			return repoError(err, "player", "RecordScore")
		}

		var err error
		recorded, err = recordScore(repos, req.PlayerID, nil, req.GrossScore, req.CourseRating, req.SlopeRating, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Score recorded", "player_id", req.PlayerID, "differential", recorded.Score.Differential)
	return recorded, nil
}

// recordScore stores a round and refreshes the player's handicap index once
// enough rounds exist
func recordScore(repos *repository.Repositories, playerID uuid.UUID, tournamentID *uuid.UUID, gross, courseRating, slopeRating float64, playedAt time.Time) (*RecordedScore, error) {
	score := models.Score{
		ID:           uuid.New(),
		PlayerID:     playerID,
		TournamentID: tournamentID,
		GrossScore:   gross,
		CourseRating: courseRating,
		SlopeRating:  slopeRating,
		Differential: scoring.Differential(gross, courseRating, slopeRating),
		PlayedAt:     playedAt,
	}
	if err := repos.Score.Create(&score); err != nil {
		return nil, repoError(err, "score", "RecordScore")
	}

	recent, err := repos.Score.GetRecentByPlayer(playerID, recentScoresWindow)
	if err != nil {
		return nil, repoError(err, "scores", "RecordScore")
	}

	differentials := make([]float64, len(recent))
	for i, sc := range recent {
		differentials[i] = sc.Differential
	}

	recorded := &RecordedScore{Score: score}
	if index, ok := scoring.HandicapIndex(differentials); ok {
		if err := repos.Player.SetHandicap(playerID, index); err != nil {
			return nil, repoError(err, "player", "RecordScore")
		}
		recorded.Handicap = &index
	}
	return recorded, nil
}

func validateGross(gross float64) *errors.AppError {
	if math.IsNaN(gross) || math.IsInf(gross, 0) || gross <= 0 {
		return errors.ValidationError("gross_score must be a positive number", nil)
	}
	return nil
}
