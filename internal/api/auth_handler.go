package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/repository"
	"github.com/Bigyayos/appgolf/internal/services"
)

// AuthHandler handles authentication operations
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new auth handler with service injection
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
	ExpiresAt    time.Time   `json:"expires_at"`
	CSRFToken    string      `json:"csrf_token"`
}

// generateCSRFToken generates a cryptographically secure CSRF token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate CSRF token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// setSecureCookie sets a secure cookie. The CSRF cookie must stay readable by the frontend.
func setSecureCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	secure := c.Request.Header.Get("X-Forwarded-Proto") == "https" || c.Request.TLS != nil
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, maxAge, "/", "", secure, httpOnly)
}

// clearCookie clears a cookie by setting it to empty with past expiration
func clearCookie(c *gin.Context, name string) {
	setSecureCookie(c, name, "", -1, true)
}

// Login authenticates a user and sets the session cookies
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondWithSession(c, http.StatusOK, response)
}

// Register creates a new player account
func (h *AuthHandler) Register(c *gin.Context) {
	var req repository.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// RefreshToken generates a new token pair from a refresh token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	type RefreshRequest struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondWithSession(c, http.StatusOK, response)
}

// Logout handles user logout by clearing cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	clearCookie(c, "auth_token")
	clearCookie(c, "csrf_token")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, response *repository.LoginResponse) {
	csrfToken, err := generateCSRFToken()
	if err != nil {
		respondError(c, err)
		return
	}

	maxAge := int(time.Until(response.ExpiresAt).Seconds())
	setSecureCookie(c, "auth_token", response.Token, maxAge, true)
	setSecureCookie(c, "csrf_token", csrfToken, maxAge, false)

	c.JSON(status, AuthResponse{
		Token:        response.Token,
		RefreshToken: response.RefreshToken,
		User:         response.User,
		ExpiresAt:    response.ExpiresAt,
		CSRFToken:    csrfToken,
	})
}
