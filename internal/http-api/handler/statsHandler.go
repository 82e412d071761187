package handler

import (
	"net/http"

	"animevote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// RegisterRoutes registers the stats route
func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.Overview)
}

// Overview returns site-wide counters.
// GET /api/stats
func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
