package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv()
	env.addPlayer("Ana", 10)
	svc := env.services.Auth

	user, err := svc.Register(&repository.RegisterRequest{Email: " Ana@Club.test ", Password: "birdie123", PlayerName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana@club.test", user.Email)
	assert.Equal(t, string(models.RolePlayer), user.Role)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Register(&repository.RegisterRequest{Email: "ana@club.test", Password: "birdie123"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict))

	resp, err := svc.Login("ana@club.test", "birdie123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Ana", resp.User.PlayerName)

	_, err = svc.Login("ana@club.test", "wrong-password")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized))
	_, err = svc.Login("nobody@club.test", "birdie123")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized))

	validated, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, validated.ID)

	refreshed, err := svc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)

	_, err = svc.RefreshToken(resp.Token)
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized), "access tokens cannot refresh")
}

func TestAuthService_RegisterRestrictions(t *testing.T) {
	env := newTestEnv()
	svc := env.services.Auth

	_, err := svc.Register(&repository.RegisterRequest{Email: "x@club.test", Password: "birdie123", Role: "superadmin"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))

	_, err = svc.Register(&repository.RegisterRequest{Email: "x@club.test", Password: "birdie123", PlayerName: "Ghost"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidationError))

	root, err := svc.CreateSuperAdmin("root@club.test", "eagle-eagle")
	require.NoError(t, err)
	assert.True(t, root.IsSuperAdmin())

	_, err = svc.CreateSuperAdmin("root2@club.test", "short")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidationError))
}

func TestAuthService_RegisterCannotClaimLinkedPlayer(t *testing.T) {
	env := newTestEnv()
	tour := env.addTournament(nil)
	env.addPlayer("Ana", 10)
	svc := env.services.Auth

	_, err := svc.Register(&repository.RegisterRequest{Email: "ana@club.test", Password: "birdie123", PlayerName: "Ana"})
	require.NoError(t, err)

	_, err = svc.Register(&repository.RegisterRequest{Email: "mallory@evil.test", Password: "birdie123", PlayerName: " Ana "})
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict))
	assert.Len(t, env.store.users, 1)

	_, err = svc.Login("mallory@evil.test", "birdie123")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized))

	// an account without a linked player cannot submit for Ana either
	_, err = svc.Register(&repository.RegisterRequest{Email: "mallory@evil.test", Password: "birdie123"})
	require.NoError(t, err)
	resp, err := svc.Login("mallory@evil.test", "birdie123")
	require.NoError(t, err)
	_, err = env.services.Result.Submit(playerPrincipal(resp.User.PlayerName), tour.ID.String(), SubmitResultRequest{PlayerName: "Ana", GrossScore: 70})
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))
	assert.Empty(t, env.store.results)
}
