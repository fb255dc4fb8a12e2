package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/repository"
	"github.com/Bigyayos/appgolf/internal/services"
)

// TournamentHandler handles tournaments, their results and leaderboards
type TournamentHandler struct {
	tournamentService  services.TournamentService
	resultService      services.ResultService
	leaderboardService services.LeaderboardService
	exportService      services.ExportService
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(svc *services.Services) *TournamentHandler {
	return &TournamentHandler{
		tournamentService:  svc.Tournament,
		resultService:      svc.Result,
		leaderboardService: svc.Leaderboard,
		exportService:      svc.Export,
	}
}

// ListTournaments returns tournaments filtered by season_id and status
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	filters, err := tournamentFilters(c)
	if err != nil {
		respondError(c, err)
		return
	}

	tournaments, err := h.tournamentService.List(filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tournaments": tournaments,
		"count":       len(tournaments),
	})
}

func tournamentFilters(c *gin.Context) (repository.TournamentFilters, error) {
	filters := repository.TournamentFilters{Status: c.Query("status")}

	if raw := c.Query("season_id"); raw != "" {
		seasonID, err := uuid.Parse(raw)
		if err != nil {
			return filters, errors.InvalidInput("invalid season_id", err)
		}
		filters.SeasonID = &seasonID
	}

	for name, dst := range map[string]*int{"limit": &filters.Limit, "offset": &filters.Offset} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filters, errors.InvalidInput(fmt.Sprintf("%s must be a non-negative integer", name), err)
		}
		*dst = n
	}
	return filters, nil
}

// GetTournament returns a tournament with results and registrations
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	details, err := h.tournamentService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// CreateTournament schedules a tournament (Super admin only)
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req services.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tournament, err := h.tournamentService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tournament)
}

// UpdateTournament changes a tournament (Super admin only)
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	var req services.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tournament, err := h.tournamentService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament removes a tournament (Super admin only)
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	if err := h.tournamentService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterPlayer signs the caller, or a named player, up for a tournament
func (h *TournamentHandler) RegisterPlayer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req struct {
		PlayerName string `json:"player_name"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	registration, err := h.tournamentService.Register(p, c.Param("id"), req.PlayerName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registration)
}

// SubmitResult records a gross score for a tournament
func (h *TournamentHandler) SubmitResult(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req services.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	submitted, err := h.resultService.Submit(p, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submitted)
}

// GetLeaderboard ranks a tournament under ?mode=medal|stableford
func (h *TournamentHandler) GetLeaderboard(c *gin.Context) {
	lb, err := h.leaderboardService.Leaderboard(c.Param("id"), c.Query("mode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lb)
}

// ExportLeaderboard downloads a leaderboard as ?format=json|csv|xlsx
func (h *TournamentHandler) ExportLeaderboard(c *gin.Context) {
	lb, err := h.leaderboardService.Leaderboard(c.Param("id"), c.Query("mode"))
	if err != nil {
		respondError(c, err)
		return
	}

	export, err := h.exportService.ExportLeaderboard(lb, c.DefaultQuery("format", "csv"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

// FinalizeTournament awards league points (Super admin only)
func (h *TournamentHandler) FinalizeTournament(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	lb, err := h.leaderboardService.Finalize(p, c.Param("id"), c.Query("mode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lb)
}
