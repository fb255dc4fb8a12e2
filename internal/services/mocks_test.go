package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/metrics"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
	"github.com/Bigyayos/appgolf/pkg/config"
)

// memStore backs the mock repositories. The mock transaction manager snapshots it
// and restores the snapshot when the transaction function fails.
type memStore struct {
	players       map[uuid.UUID]models.Player
	tournaments   map[uuid.UUID]models.Tournament
	seasons       map[uuid.UUID]models.Season
	users         map[uuid.UUID]models.User
	registrations []models.Registration
	results       []models.Result
	scores        []models.Score

	// failures injects an error into the named repository method
	failures map[string]error
	// after runs once the named repository method has read its data, standing in
	// for another transaction committing in between
	after map[string]func()
}

func newMemStore() *memStore {
	return &memStore{
		players:     make(map[uuid.UUID]models.Player),
		tournaments: make(map[uuid.UUID]models.Tournament),
		seasons:     make(map[uuid.UUID]models.Season),
		users:       make(map[uuid.UUID]models.User),
		failures:    make(map[string]error),
		after:       make(map[string]func()),
	}
}

func (m *memStore) fail(method string) error {
	return m.failures[method]
}

func (m *memStore) runAfter(method string) {
	if fn := m.after[method]; fn != nil {
		fn()
	}
}

func (m *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range m.players {
		c.players[k] = v
	}
	for k, v := range m.tournaments {
		c.tournaments[k] = v
	}
	for k, v := range m.seasons {
		c.seasons[k] = v
	}
	for k, v := range m.users {
		c.users[k] = v
	}
	c.registrations = append(c.registrations, m.registrations...)
	c.results = append(c.results, m.results...)
	c.scores = append(c.scores, m.scores...)
	c.failures = m.failures
	c.after = m.after
	return c
}

func (m *memStore) restore(from *memStore) {
	*m = *from
}

func (m *memStore) repositories() *repository.Repositories {
	repos := &repository.Repositories{
		Player:     &MockPlayerRepository{m},
		Tournament: &MockTournamentRepository{m},
		Result:     &MockResultRepository{m},
		Score:      &MockScoreRepository{m},
		Season:     &MockSeasonRepository{m},
		User:       &MockUserRepository{m},
	}
	repos.Tx = &MockTransactionManager{store: m, repos: repos}
	return repos
}

// MockTransactionManager runs fn against the same repositories and rolls the store back on error
type MockTransactionManager struct {
	store *memStore
	repos *repository.Repositories
	calls int
}

func (tm *MockTransactionManager) WithTransaction(fn func(repos *repository.Repositories) error) error {
	tm.calls++
	saved := tm.store.snapshot()
	if err := fn(tm.repos); err != nil {
		tm.store.restore(saved)
		return err
	}
	return nil
}

// MockPlayerRepository implements PlayerRepository for testing
type MockPlayerRepository struct{ s *memStore }

func (r *MockPlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	if err := r.s.fail("Player.GetByID"); err != nil {
		return nil, err
	}
	p, ok := r.s.players[id]
	if !ok {
		return nil, fmt.Errorf("player %s: %w", id, repository.ErrNotFound)
	}
	return &p, nil
}

func (r *MockPlayerRepository) GetByName(name string) (*models.Player, error) {
	for _, p := range r.s.players {
		if p.Name == name {
			p := p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("player %q: %w", name, repository.ErrNotFound)
}

func (r *MockPlayerRepository) GetByNames(names []string) ([]models.Player, error) {
	if err := r.s.fail("Player.GetByNames"); err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []models.Player
	for _, p := range r.s.players {
		if wanted[p.Name] {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MockPlayerRepository) GetAll() ([]models.Player, error) {
	if err := r.s.fail("Player.GetAll"); err != nil {
		return nil, err
	}
	out := make([]models.Player, 0, len(r.s.players))
	for _, p := range r.s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MockPlayerRepository) Create(player *models.Player) error {
	for _, p := range r.s.players {
		if p.Name == player.Name {
			return fmt.Errorf("player: %w", repository.ErrDuplicate)
		}
	}
	player.CreatedAt = time.Now()
	player.UpdatedAt = player.CreatedAt
	r.s.players[player.ID] = *player
	return nil
}

func (r *MockPlayerRepository) Update(player *models.Player) error {
	if _, ok := r.s.players[player.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.players[player.ID] = *player
	return nil
}

func (r *MockPlayerRepository) Delete(id uuid.UUID) error {
	if _, ok := r.s.players[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.players, id)
	return nil
}

func (r *MockPlayerRepository) AddRankingPoints(id uuid.UUID, points int, victory bool) error {
	if err := r.s.fail("Player.AddRankingPoints"); err != nil {
		return err
	}
	p, ok := r.s.players[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.RankingPoints += points
	if victory {
		p.Victories++
	}
	r.s.players[id] = p
	return nil
}

func (r *MockPlayerRepository) SetHandicap(id uuid.UUID, handicap float64) error {
	p, ok := r.s.players[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Handicap = handicap
	r.s.players[id] = p
	return nil
}

// MockTournamentRepository implements TournamentRepository for testing
type MockTournamentRepository struct{ s *memStore }

func (r *MockTournamentRepository) GetByID(id uuid.UUID) (*models.Tournament, error) {
	t, ok := r.s.tournaments[id]
	if !ok {
		return nil, fmt.Errorf("tournament %s: %w", id, repository.ErrNotFound)
	}
	return &t, nil
}

func (r *MockTournamentRepository) GetForUpdate(id uuid.UUID) (*models.Tournament, error) {
	t, ok := r.s.tournaments[id]
	if !ok {
		return nil, fmt.Errorf("tournament %s: %w", id, repository.ErrNotFound)
	}
	r.s.runAfter("Tournament.GetForUpdate")
	return &t, nil
}

func (r *MockTournamentRepository) GetAll(filters repository.TournamentFilters) ([]models.Tournament, error) {
	var out []models.Tournament
	for _, t := range r.s.tournaments {
		if filters.Status != "" && t.Status != filters.Status {
			continue
		}
		if filters.SeasonID != nil && (t.SeasonID == nil || *t.SeasonID != *filters.SeasonID) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *MockTournamentRepository) Create(t *models.Tournament) error {
	r.s.tournaments[t.ID] = *t
	return nil
}

func (r *MockTournamentRepository) Update(t *models.Tournament) error {
	if _, ok := r.s.tournaments[t.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.tournaments[t.ID] = *t
	return nil
}

func (r *MockTournamentRepository) Delete(id uuid.UUID) error {
	if _, ok := r.s.tournaments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.tournaments, id)
	return nil
}

func (r *MockTournamentRepository) TransitionStatus(id uuid.UUID, from, to string) error {
	if err := r.s.fail("Tournament.TransitionStatus"); err != nil {
		return err
	}
	t, ok := r.s.tournaments[id]
	if !ok || t.Status != from {
		return fmt.Errorf("tournament %s no longer %s: %w", id, from, repository.ErrStaleState)
	}
	t.Status = to
	r.s.tournaments[id] = t
	return nil
}

func (r *MockTournamentRepository) Register(tournamentID, playerID uuid.UUID) error {
	for _, reg := range r.s.registrations {
		if reg.TournamentID == tournamentID && reg.PlayerID == playerID {
			return fmt.Errorf("registration: %w", repository.ErrDuplicate)
		}
	}
	r.s.registrations = append(r.s.registrations, models.Registration{
		TournamentID: tournamentID,
		PlayerID:     playerID,
		PlayerName:   r.s.players[playerID].Name,
		RegisteredAt: time.Now(),
	})
	return nil
}

func (r *MockTournamentRepository) GetRegistrations(tournamentID uuid.UUID) ([]models.Registration, error) {
	var out []models.Registration
	for _, reg := range r.s.registrations {
		if reg.TournamentID == tournamentID {
			out = append(out, reg)
		}
	}
	return out, nil
}

// MockResultRepository implements ResultRepository for testing
type MockResultRepository struct{ s *memStore }

func (r *MockResultRepository) Create(result *models.Result) error {
	if err := r.s.fail("Result.Create"); err != nil {
		return err
	}
	for _, res := range r.s.results {
		if res.TournamentID == result.TournamentID && res.PlayerName == result.PlayerName {
			return fmt.Errorf("result for %s: %w", result.PlayerName, repository.ErrDuplicate)
		}
	}
	r.s.results = append(r.s.results, *result)
	return nil
}

func (r *MockResultRepository) GetByTournament(tournamentID uuid.UUID) ([]models.Result, error) {
	var out []models.Result
	for _, res := range r.s.results {
		if res.TournamentID == tournamentID {
			out = append(out, res)
		}
	}
	r.s.runAfter("Result.GetByTournament")
	return out, nil
}

// MockScoreRepository implements ScoreRepository for testing
type MockScoreRepository struct{ s *memStore }

func (r *MockScoreRepository) Create(score *models.Score) error {
	if err := r.s.fail("Score.Create"); err != nil {
		return err
	}
	r.s.scores = append(r.s.scores, *score)
	return nil
}

// GetRecentByPlayer returns scores newest first, using insertion order
func (r *MockScoreRepository) GetRecentByPlayer(playerID uuid.UUID, limit int) ([]models.Score, error) {
	var out []models.Score
	for i := len(r.s.scores) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.scores[i].PlayerID == playerID {
			out = append(out, r.s.scores[i])
		}
	}
	return out, nil
}

// MockSeasonRepository implements SeasonRepository for testing
type MockSeasonRepository struct{ s *memStore }

func (r *MockSeasonRepository) GetByID(id uuid.UUID) (*models.Season, error) {
	season, ok := r.s.seasons[id]
	if !ok {
		return nil, fmt.Errorf("season %s: %w", id, repository.ErrNotFound)
	}
	return &season, nil
}

func (r *MockSeasonRepository) GetAll() ([]models.Season, error) {
	var out []models.Season
	for _, season := range r.s.seasons {
		out = append(out, season)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *MockSeasonRepository) Create(season *models.Season) error {
	r.s.seasons[season.ID] = *season
	return nil
}

func (r *MockSeasonRepository) Update(season *models.Season) error {
	if _, ok := r.s.seasons[season.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.seasons[season.ID] = *season
	return nil
}

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct{ s *memStore }

func (r *MockUserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MockUserRepository) GetByPlayerName(playerName string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.PlayerName == playerName {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MockUserRepository) Create(user *models.User) error {
	for _, u := range r.s.users {
		if u.Email == user.Email || (user.PlayerName != "" && u.PlayerName == user.PlayerName) {
			return fmt.Errorf("user: %w", repository.ErrDuplicate)
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *MockUserRepository) Update(user *models.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *MockUserRepository) Delete(id uuid.UUID) error {
	delete(r.s.users, id)
	return nil
}

// testEnv wires services over an in-memory store
type testEnv struct {
	store    *memStore
	repos    *repository.Repositories
	metrics  *metrics.Metrics
	services *Services
}

func newTestEnv() *testEnv {
	store := newMemStore()
	repos := store.repositories()
	m := metrics.New()
	cfg := &config.Config{JWTSecret: "test-secret", DefaultPar: 72}
	return &testEnv{
		store:    store,
		repos:    repos,
		metrics:  m,
		services: newServices(repos, cfg, logger.Nop(), m, &stubImporter{}),
	}
}

func (e *testEnv) addPlayer(name string, handicap float64) models.Player {
	p := models.Player{ID: uuid.New(), Name: name, Handicap: handicap}
	e.store.players[p.ID] = p
	return p
}

func (e *testEnv) addTournament(mutate func(t *models.Tournament)) models.Tournament {
	t := models.Tournament{
		ID:          uuid.New(),
		Name:        "Spring Open",
		Date:        time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
		Par:         72,
		Category:    "A",
		ScoringMode: "medal",
		Status:      models.TournamentOpen,
	}
	if mutate != nil {
		mutate(&t)
	}
	e.store.tournaments[t.ID] = t
	return t
}

func (e *testEnv) addResult(tournamentID uuid.UUID, name string, gross float64) {
	e.store.results = append(e.store.results, models.Result{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		PlayerName:   name,
		GrossScore:   gross,
	})
}
