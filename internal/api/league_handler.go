package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/services"
)

// LeagueHandler serves the league table, handicap rounds and course imports
type LeagueHandler struct {
	rankingService services.RankingService
	scoreService   services.ScoreService
	playerService  services.PlayerService
	courseService  services.CourseService
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(svc *services.Services) *LeagueHandler {
	return &LeagueHandler{
		rankingService: svc.Ranking,
		scoreService:   svc.Score,
		playerService:  svc.Player,
		courseService:  svc.Course,
	}
}

// GetRankings returns the league table
func (h *LeagueHandler) GetRankings(c *gin.Context) {
	standings, err := h.rankingService.LeagueRankings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, standings)
}

// RecordScore stores a round for handicap calculation. Players may only record their own.
func (h *LeagueHandler) RecordScore(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req services.RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if !p.IsSuperAdmin() {
		own, err := h.playerService.GetByName(p.PlayerName)
		if err != nil || own.ID != req.PlayerID {
			respondError(c, errors.Forbidden("cannot record scores for another player", err))
			return
		}
	}

	recorded, err := h.scoreService.Record(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recorded)
}

// ImportCourse reads par and ratings from a scorecard URL (Super admin only)
func (h *LeagueHandler) ImportCourse(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	info, err := h.courseService.Import(c.Request.Context(), req.URL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
