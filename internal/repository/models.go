package repository

import (
	"time"

	"github.com/Bigyayos/appgolf/internal/models"
)

// LoginResponse represents the response from login
type LoginResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	PlayerName string `json:"player_name"`
	Role       string `json:"role,omitempty"`
}
