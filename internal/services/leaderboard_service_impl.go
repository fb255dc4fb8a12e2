package services

import (
	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/auth"
	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/metrics"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
	"github.com/Bigyayos/appgolf/internal/scoring"
	"github.com/Bigyayos/appgolf/pkg/config"
)

// leaderboardServiceImpl implements LeaderboardService
type leaderboardServiceImpl struct {
	repos      *repository.Repositories
	builder    *scoring.RankingBuilder
	defaultPar float64
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// newLeaderboardService creates a new leaderboard service implementation
func newLeaderboardService(repos *repository.Repositories, cfg *config.Config, log logger.Logger, m *metrics.Metrics) LeaderboardService {
	return &leaderboardServiceImpl{
		repos:      repos,
		builder:    scoring.NewRankingBuilder(),
		defaultPar: scoring.NormalizePar(cfg.DefaultPar),
		logger:     log,
		metrics:    m,
	}
}

// Leaderboard ranks a tournament's results. An empty mode uses the tournament's own.
func (s *leaderboardServiceImpl) Leaderboard(tournamentID, mode string) (*Leaderboard, error) {
	id, err := parseID(tournamentID, "tournament", "Leaderboard")
	if err != nil {
		return nil, err
	}

	tournament, err := s.repos.Tournament.GetByID(id)
	if err != nil {
		return nil, repoError(err, "tournament", "Leaderboard")
	}

	lb, _, err := s.build(s.repos, tournament, mode)
	if err != nil {
		return nil, err
	}
	s.metrics.LeaderboardsBuilt.WithLabelValues(string(lb.Mode)).Inc()
	return lb, nil
}

// Finalize awards league points for a tournament and marks it completed.
// Only super admins may finalize, and only once: the tournament row is locked and
// the status moves from open to completed before any points are awarded.
func (s *leaderboardServiceImpl) Finalize(principal auth.Principal, tournamentID, mode string) (*Leaderboard, error) {
	if !principal.IsSuperAdmin() {
		return nil, errors.Forbidden("super admin access required", nil).WithOperation("FinalizeTournament")
	}

	id, err := parseID(tournamentID, "tournament", "FinalizeTournament")
	if err != nil {
		return nil, err
	}

	var lb *Leaderboard
	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		tournament, err := repos.Tournament.GetForUpdate(id)
		if err != nil {
			return repoError(err, "tournament", "FinalizeTournament")
		}
		if tournament.IsCompleted() {
			return errors.Conflict("tournament is already completed", nil).WithOperation("FinalizeTournament")
		}

		category, err := scoring.ParseCategory(tournament.Category)
		if err != nil {
			return errors.ValidationError("tournament has no valid category", err).WithOperation("FinalizeTournament")
		}

		var playerIDs map[string]uuid.UUID
		lb, playerIDs, err = s.build(repos, tournament, mode)
		if err != nil {
			return err
		}
		if len(lb.Entries) == 0 {
			return errors.ValidationError("tournament has no results", nil).WithOperation("FinalizeTournament")
		}

		if err := repos.Tournament.TransitionStatus(id, tournament.Status, models.TournamentCompleted); err != nil {
			return repoError(err, "tournament", "FinalizeTournament")
		}
		lb.Tournament.Status = models.TournamentCompleted

		for _, entry := range lb.Entries {
			playerID, ok := playerIDs[entry.PlayerName]
			if !ok {
				continue
			}
			points := scoring.TournamentPoints(entry.Position, category)
			victory := entry.Position == 1
			if points == 0 && !victory {
				continue
			}
			if err := repos.Player.AddRankingPoints(playerID, points, victory); err != nil {
				return repoError(err, "player", "FinalizeTournament")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.LeaderboardsBuilt.WithLabelValues(string(lb.Mode)).Inc()
	s.metrics.TournamentsFinal.Inc()
	s.logger.Info("Tournament finalized", "tournament_id", id, "mode", lb.Mode, "entries", len(lb.Entries), "by", principal.Email)
	return lb, nil
}

// build loads results and players and runs the ranking. It also returns the IDs
// of the players that resolved, keyed by name.
func (s *leaderboardServiceImpl) build(repos *repository.Repositories, tournament *models.Tournament, mode string) (*Leaderboard, map[string]uuid.UUID, error) {
	if mode == "" {
		mode = tournament.ScoringMode
	}
	scoringMode, err := scoring.ParseMode(mode)
	if err != nil {
		return nil, nil, errors.InvalidInput("mode must be medal or stableford", err).WithOperation("Leaderboard")
	}

	results, err := repos.Result.GetByTournament(tournament.ID)
	if err != nil {
		return nil, nil, repoError(err, "results", "Leaderboard")
	}

	scores := make([]scoring.Score, len(results))
	names := make([]string, 0, len(results))
	for i, r := range results {
		scores[i] = scoring.Score{PlayerName: r.PlayerName, GrossScore: r.GrossScore}
		names = append(names, r.PlayerName)
	}

	var known []models.Player
	if len(names) > 0 {
		known, err = repos.Player.GetByNames(names)
		if err != nil {
			return nil, nil, repoError(err, "players", "Leaderboard")
		}
	}

	players := make([]scoring.Player, len(known))
	playerIDs := make(map[string]uuid.UUID, len(known))
	for i, p := range known {
		handicap := p.Handicap
		players[i] = scoring.Player{Name: p.Name, Handicap: &handicap}
		playerIDs[p.Name] = p.ID
	}
	index := scoring.PlayersByName(players)

	par := tournament.Par
	if par <= 0 {
		par = s.defaultPar
	}

	lb := &Leaderboard{
		Tournament: *tournament,
		Mode:       scoringMode,
		Par:        scoring.NormalizePar(par),
		Entries:    s.builder.Build(scores, index, scoringMode, par),
		Unresolved: scoring.Unresolved(scores, index),
	}

	if len(lb.Unresolved) > 0 {
		s.logger.Debug("Leaderboard has unknown players", "tournament_id", tournament.ID, "players", lb.Unresolved)
	}
	return lb, playerIDs, nil
}

// rankingServiceImpl implements RankingService
type rankingServiceImpl struct {
	repos *repository.Repositories
}

// newRankingService creates a new ranking service implementation
func newRankingService(repos *repository.Repositories) RankingService {
	return &rankingServiceImpl{repos: repos}
}

// LeagueRankings returns the league table
func (s *rankingServiceImpl) LeagueRankings() ([]scoring.Standing, error) {
	players, err := s.repos.Player.GetAll()
	if err != nil {
		return nil, repoError(err, "players", "LeagueRankings")
	}

	standings := make([]scoring.Standing, len(players))
	for i, p := range players {
		standings[i] = scoring.Standing{
			PlayerName:    p.Name,
			Handicap:      p.Handicap,
			Victories:     p.Victories,
			RankingPoints: p.RankingPoints,
		}
	}
	return scoring.SortStandings(standings), nil
}
