package handler

import (
	"net/http"
	"strconv"
	"time"

	"animevote/internal/http-api/dto"
	"animevote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// RegisterRoutes registers leaderboard routes (all public, read-only)
func (h *LeaderboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/top", h.Top)
	router.GET("/top/data", h.TopData)
	router.GET("/top/render", h.Render)
	router.GET("/top/render/compact", h.RenderCompact)
}

func (h *LeaderboardHandler) topN(c *gin.Context) ([]dto.RankedAnime, error) {
	n, _ := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(service.DefaultTopN)))
	return h.leaderboardService.TopN(c.Request.Context(), n)
}

// Top returns the top-N animes with ranks.
// GET /api/leaderboard/top?n=3
func (h *LeaderboardHandler) Top(c *gin.Context) {
	ranked, err := h.topN(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.LeaderboardResponse{
			Success: false,
			Message: "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Success: true,
		Data:    ranked,
		Message: "top animes retrieved successfully",
	})
}

// TopData is the overlay's JSON feed; same ranking plus a timestamp.
// GET /api/leaderboard/top/data
func (h *LeaderboardHandler) TopData(c *gin.Context) {
	ranked, err := h.topN(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.LeaderboardDataResponse{
			Success:   false,
			Message:   "internal server error",
			Data:      []dto.RankedAnime{},
			Timestamp: time.Now().UTC(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.LeaderboardDataResponse{
		Success:   true,
		Data:      ranked,
		Message:   "top animes retrieved successfully",
		Timestamp: time.Now().UTC(),
		Total:     len(ranked),
	})
}

// Render serves the full HTML overlay for OBS browser sources. The page
// reloads itself so the tallies stay fresh without any client logic.
// GET /api/leaderboard/top/render
func (h *LeaderboardHandler) Render(c *gin.Context) {
	h.render(c, overlayTemplate)
}

// RenderCompact serves a smaller overlay variant for tight layouts.
// GET /api/leaderboard/top/render/compact
func (h *LeaderboardHandler) RenderCompact(c *gin.Context) {
	h.render(c, overlayCompactTemplate)
}

func (h *LeaderboardHandler) render(c *gin.Context, tmpl overlayRenderer) {
	ranked, err := h.topN(c)
	if err != nil {
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(overlayErrorHTML))
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(c.Writer, overlayData{Animes: ranked, GeneratedAt: time.Now()}); err != nil {
		// Too late for a status change; the partial page is abandoned.
		_ = c.Error(err)
	}
}
