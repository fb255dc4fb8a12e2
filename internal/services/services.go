package services

import (
	"context"
	"database/sql"

	"github.com/Bigyayos/appgolf/internal/auth"
	"github.com/Bigyayos/appgolf/internal/courses"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/metrics"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
	"github.com/Bigyayos/appgolf/internal/scoring"
	"github.com/Bigyayos/appgolf/pkg/config"
)

// Services contains all application services
type Services struct {
	Player      PlayerService
	Tournament  TournamentService
	Result      ResultService
	Score       ScoreService
	Leaderboard LeaderboardService
	Ranking     RankingService
	Season      SeasonService
	Auth        AuthService
	Export      ExportService
	Course      CourseService
}

// PlayerService defines the interface for player business logic
type PlayerService interface {
	List() ([]models.Player, error)
	Get(id string) (*models.Player, error)
	GetByName(name string) (*models.Player, error)
	Create(req CreatePlayerRequest) (*models.Player, error)
	Update(id string, req UpdatePlayerRequest) (*models.Player, error)
	Delete(id string) error
}

// TournamentService defines the interface for tournament business logic
type TournamentService interface {
	List(filters repository.TournamentFilters) ([]models.Tournament, error)
	Get(id string) (*TournamentDetails, error)
	Create(req CreateTournamentRequest) (*models.Tournament, error)
	Update(id string, req UpdateTournamentRequest) (*models.Tournament, error)
	Delete(id string) error
	Register(principal auth.Principal, id, playerName string) (*models.Registration, error)
}

// ResultService records tournament results
type ResultService interface {
	Submit(principal auth.Principal, tournamentID string, req SubmitResultRequest) (*SubmittedResult, error)
}

// ScoreService records rounds for handicap calculation
type ScoreService interface {
	Record(req RecordScoreRequest) (*RecordedScore, error)
}

// LeaderboardService computes and finalizes tournament leaderboards
type LeaderboardService interface {
	Leaderboard(tournamentID, mode string) (*Leaderboard, error)
	Finalize(principal auth.Principal, tournamentID, mode string) (*Leaderboard, error)
}

// RankingService builds the league table
type RankingService interface {
	LeagueRankings() ([]scoring.Standing, error)
}

// SeasonService defines the interface for season business logic
type SeasonService interface {
	List() ([]models.Season, error)
	Get(id string) (*models.Season, error)
	Create(req CreateSeasonRequest) (*models.Season, error)
	Update(id string, req UpdateSeasonRequest) (*models.Season, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(email, password string) (*repository.LoginResponse, error)
	Register(user *repository.RegisterRequest) (*models.User, error)
	CreateSuperAdmin(email, password string) (*models.User, error)
	ValidateToken(token string) (*models.User, error)
	RefreshToken(token string) (*repository.LoginResponse, error)
}

// ExportService renders leaderboards for download
type ExportService interface {
	ExportLeaderboard(lb *Leaderboard, format string) (*Export, error)
}

// CourseService imports course data from scorecard pages
type CourseService interface {
	Import(ctx context.Context, url string) (*courses.CourseInfo, error)
	Health() courses.HealthStatus
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config, log logger.Logger, m *metrics.Metrics) *Services {
	repos := repository.NewRepositories(db)
	importer := courses.NewImporter(courses.NewClient(cfg.CourseImportRPS))

	return newServices(repos, cfg, log, m, importer)
}

func newServices(repos *repository.Repositories, cfg *config.Config, log logger.Logger, m *metrics.Metrics, fetcher courseImporter) *Services {
	leaderboards := newLeaderboardService(repos, cfg, log, m)

	return &Services{
		Player:      newPlayerService(repos, log),
		Tournament:  newTournamentService(repos, cfg, log),
		Result:      newResultService(repos, log, m),
		Score:       newScoreService(repos, log),
		Leaderboard: leaderboards,
		Ranking:     newRankingService(repos),
		Season:      newSeasonService(repos, log),
		Auth:        newAuthService(repos, cfg, log),
		Export:      newExportService(),
		Course:      newCourseService(fetcher, log, m),
	}
}
