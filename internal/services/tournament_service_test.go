package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"

	"github.com/Bigyayos/appgolf/internal/auth"
	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
)

var (
	admin           = auth.Principal{UserID: uuid.New(), Email: "admin@club.test", Role: string(models.RoleSuperAdmin)}
	playerPrincipal = func(name string) auth.Principal {
		return auth.Principal{UserID: uuid.New(), Email: name + "@club.test", Role: string(models.RolePlayer), PlayerName: name}
	}
)

func TestTournamentService_Create(t *testing.T) {
	env := newTestEnv()
	svc := env.services.Tournament

	tournament, err := svc.Create(CreateTournamentRequest{
		Name:        "Summer Cup",
		Date:        "2024-07-14",
		Category:    "b",
		ScoringMode: "Stableford",
	})
	require.NoError(t, err)
	assert.Equal(t, "B", tournament.Category)
	assert.Equal(t, "stableford", tournament.ScoringMode)
	assert.Equal(t, 72.0, tournament.Par, "missing par falls back to the default")
	assert.Equal(t, models.TournamentOpen, tournament.Status)

	unknownSeason := uuid.New()
	tests := []struct {
		name string
		req  CreateTournamentRequest
	}{
		{"bad category", CreateTournamentRequest{Name: "X", Date: "2024-07-14", Category: "D"}},
		{"bad mode", CreateTournamentRequest{Name: "X", Date: "2024-07-14", Category: "A", ScoringMode: "skins"}},
		{"bad date", CreateTournamentRequest{Name: "X", Date: "14/07/2024", Category: "A"}},
		{"unknown season", CreateTournamentRequest{Name: "X", Date: "2024-07-14", Category: "A", SeasonID: &unknownSeason}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.req)
			assert.True(t, errors.HasCode(err, errors.ErrCodeValidationError), "got %v", err)
		})
	}
}

func TestTournamentService_UpdateCompletedIsFrozen(t *testing.T) {
	env := newTestEnv()
	done := env.addTournament(func(t *models.Tournament) { t.Status = models.TournamentCompleted })

	_, err := env.services.Tournament.Update(done.ID.String(), UpdateTournamentRequest{Name: pointer.String("Renamed")})
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict))

	open := env.addTournament(nil)
	updated, err := env.services.Tournament.Update(open.ID.String(), UpdateTournamentRequest{
		Name:        pointer.String("Renamed"),
		SlopeRating: pointer.Float64(128),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 128.0, env.store.tournaments[open.ID].SlopeRating)
}

func TestTournamentService_GetDetails(t *testing.T) {
	env := newTestEnv()
	tour := env.addTournament(nil)
	env.addResult(tour.ID, "Ana", 80)

	details, err := env.services.Tournament.Get(tour.ID.String())
	require.NoError(t, err)
	assert.Equal(t, tour.Name, details.Name)
	assert.Len(t, details.Results, 1)
	assert.Empty(t, details.Registrations)
}

func TestTournamentService_List(t *testing.T) {
	env := newTestEnv()
	env.addTournament(nil)
	env.addTournament(func(t *models.Tournament) { t.Status = models.TournamentCompleted })

	open, err := env.services.Tournament.List(repository.TournamentFilters{Status: models.TournamentOpen})
	require.NoError(t, err)
	assert.Len(t, open, 1)

	_, err = env.services.Tournament.List(repository.TournamentFilters{Status: "cancelled"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}

func TestTournamentService_Register(t *testing.T) {
	env := newTestEnv()
	tour := env.addTournament(nil)
	ana := env.addPlayer("Ana", 10)
	env.addPlayer("Luis", 15)

	reg, err := env.services.Tournament.Register(playerPrincipal("Ana"), tour.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, reg.PlayerID)

	_, err = env.services.Tournament.Register(playerPrincipal("Ana"), tour.ID.String(), "Ana")
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict), "second registration: %v", err)

	_, err = env.services.Tournament.Register(playerPrincipal("Ana"), tour.ID.String(), "Luis")
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))

	_, err = env.services.Tournament.Register(admin, tour.ID.String(), "Luis")
	assert.NoError(t, err)

	_, err = env.services.Tournament.Register(admin, tour.ID.String(), "Nobody")
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))

	assert.Len(t, env.store.registrations, 2)
}
