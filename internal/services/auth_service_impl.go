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
	"github.com/Bigyayos/appgolf/pkg/config"
)

// authServiceImpl implements AuthService
type authServiceImpl struct {
	repos      *repository.Repositories
	jwtService *auth.JWTService
	logger     logger.Logger
}

// newAuthService creates a new auth service implementation
func newAuthService(repos *repository.Repositories, cfg *config.Config, log logger.Logger) AuthService {
	return &authServiceImpl{
		repos:      repos,
		jwtService: auth.NewJWTService(cfg.JWTSecret),
		logger:     log,
	}
}

// Login authenticates a user and returns a token pair
func (s *authServiceImpl) Login(email, password string) (*repository.LoginResponse, error) {
	user, err := s.repos.User.GetByEmail(normalizeEmail(email))
	if err != nil {
		if !stderrors.Is(err, repository.ErrNotFound) {
			s.logger.Error("Failed to load user for login", err)
		}
		return nil, errors.Unauthorized("invalid credentials", nil).WithOperation("Login")
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn("Failed login attempt", "email", user.Email)
		return nil, errors.Unauthorized("invalid credentials", nil).WithOperation("Login")
	}

	return s.issueTokens(user)
}

// Register creates a player account. Super admins are only created through CreateSuperAdmin.
// A player can be linked to one account only; claiming an already linked player is a conflict.
func (s *authServiceImpl) Register(req *repository.RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = string(models.RolePlayer)
	}
	if role != string(models.RolePlayer) {
		return nil, errors.Forbidden("only player accounts can be registered", nil).WithOperation("Register")
	}

	playerName := strings.TrimSpace(req.PlayerName)
	if playerName != "" {
		if _, err := s.repos.Player.GetByName(playerName); err != nil {
			if stderrors.Is(err, repository.ErrNotFound) {
				return nil, errors.ValidationError("no player named "+playerName, err).WithOperation("Register")
			}
			return nil, repoError(err, "player", "Register")
		}

		owner, err := s.repos.User.GetByPlayerName(playerName)
		if err == nil {
			s.logger.Warn("Registration for an already linked player", "player", playerName, "owner", owner.ID)
			return nil, errors.Conflict("player "+playerName+" is already linked to an account", nil).WithOperation("Register")
		}
		if !stderrors.Is(err, repository.ErrNotFound) {
			return nil, repoError(err, "user", "Register")
		}
	}

	return s.createUser(req.Email, req.Password, role, playerName)
}

// CreateSuperAdmin creates a league administrator account
func (s *authServiceImpl) CreateSuperAdmin(email, password string) (*models.User, error) {
	if len(password) < 8 {
		return nil, errors.ValidationError("password must be at least 8 characters", nil).WithOperation("CreateSuperAdmin")
	}
	return s.createUser(email, password, string(models.RoleSuperAdmin), "")
}

func (s *authServiceImpl) createUser(email, password, role, playerName string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, errors.ValidationError("email is required", nil).WithOperation("CreateUser")
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, errors.InternalError("failed to hash password", err).WithOperation("CreateUser")
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		PlayerName:   playerName,
	}

	if err := s.repos.User.Create(user); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.Conflict("an account already exists for this email or player", err).WithOperation("CreateUser")
		}
		return nil, repoError(err, "user", "CreateUser")
	}

	s.logger.Info("User created", "user_id", user.ID, "role", role)

	user.PasswordHash = ""
	return user, nil
}

// ValidateToken validates an access token and returns the user
func (s *authServiceImpl) ValidateToken(token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errors.Unauthorized("invalid token", err).WithOperation("ValidateToken")
	}

	user, err := s.repos.User.GetByID(claims.UserID)
	if err != nil {
		return nil, errors.Unauthorized("user not found", err).WithOperation("ValidateToken")
	}

	user.PasswordHash = ""
	return user, nil
}

// RefreshToken issues a new token pair from a refresh token
func (s *authServiceImpl) RefreshToken(refreshToken string) (*repository.LoginResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("invalid refresh token", err).WithOperation("RefreshToken")
	}

	user, err := s.repos.User.GetByID(claims.UserID)
	if err != nil {
		return nil, errors.Unauthorized("user not found", err).WithOperation("RefreshToken")
	}

	return s.issueTokens(user)
}

func (s *authServiceImpl) issueTokens(user *models.User) (*repository.LoginResponse, error) {
	claims := auth.Claims{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		PlayerName: user.PlayerName,
	}

	token, expiresAt, err := s.jwtService.GenerateToken(claims)
	if err != nil {
		return nil, errors.InternalError("failed to generate token", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(claims)
	if err != nil {
		return nil, errors.InternalError("failed to generate refresh token", err)
	}

	user.PasswordHash = ""
	return &repository.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         *user,
		ExpiresAt:    expiresAt,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
