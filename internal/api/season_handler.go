package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bigyayos/appgolf/internal/services"
)

// SeasonHandler handles season operations
type SeasonHandler struct {
	seasonService services.SeasonService
}

// NewSeasonHandler creates a new season handler
func NewSeasonHandler(seasonService services.SeasonService) *SeasonHandler {
	return &SeasonHandler{seasonService: seasonService}
}

// ListSeasons returns every season
func (h *SeasonHandler) ListSeasons(c *gin.Context) {
	seasons, err := h.seasonService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"seasons": seasons,
		"count":   len(seasons),
	})
}

// GetSeason returns a single season
func (h *SeasonHandler) GetSeason(c *gin.Context) {
	season, err := h.seasonService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, season)
}

// CreateSeason opens a season (Super admin only)
func (h *SeasonHandler) CreateSeason(c *gin.Context) {
	var req services.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	season, err := h.seasonService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, season)
}

// UpdateSeason changes a season (Super admin only)
func (h *SeasonHandler) UpdateSeason(c *gin.Context) {
	var req services.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	season, err := h.seasonService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, season)
}
