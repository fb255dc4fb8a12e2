package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bigyayos/appgolf/internal/services"
)

// PlayerHandler handles player operations
type PlayerHandler struct {
	playerService services.PlayerService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// ListPlayers returns every player in the league
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"players": players,
		"count":   len(players),
	})
}

// GetPlayer returns a single player
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, err := h.playerService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// GetPlayerByName returns the player with an exact name
func (h *PlayerHandler) GetPlayerByName(c *gin.Context) {
	player, err := h.playerService.GetByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// CreatePlayer adds a player (Super admin only)
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req services.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	player, err := h.playerService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer changes a player (Super admin only)
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	var req services.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	player, err := h.playerService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// DeletePlayer removes a player (Super admin only)
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	if err := h.playerService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
