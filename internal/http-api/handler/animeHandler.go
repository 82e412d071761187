package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animevote/internal/http-api/dto"
	"animevote/internal/http-api/middleware"
	"animevote/internal/http-api/repository"
	"animevote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AnimeHandler struct {
	animeService service.AnimeService
}

func NewAnimeHandler(animeService service.AnimeService) *AnimeHandler {
	return &AnimeHandler{animeService: animeService}
}

// RegisterRoutes registers catalog routes. Reads are public; writes
// require an authenticated admin.
func (h *AnimeHandler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, userRepo repository.UserRepository) {
	router.GET("", h.List)
	router.GET("/:anime_id", h.Get)

	admin := router.Group("")
	admin.Use(authMW, middleware.RequireAdmin(userRepo))
	{
		admin.POST("", h.Create)
		admin.PUT("/:anime_id", h.Update)
		admin.DELETE("/:anime_id", h.Delete)
	}
}

// List returns the paginated catalog sorted by tally.
// GET /api/animes?page=1&limit=12
func (h *AnimeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	animes, total, err := h.animeService.GetAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	responses := make([]dto.AnimeResponse, 0, len(animes))
	for _, a := range animes {
		responses = append(responses, dto.FromModelToResponse(a))
	}

	c.JSON(http.StatusOK, dto.NewPaginatedAnimeResponse(responses, page, limit, total))
}

// Get returns a single catalog entry.
// GET /api/animes/:anime_id
func (h *AnimeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid anime ID"})
		return
	}

	anime, err := h.animeService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "anime not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToResponse(*anime))
}

// Create adds a catalog entry (admin only).
// POST /api/animes
func (h *AnimeHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	var req dto.CreateAnimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	anime, err := h.animeService.Create(c.Request.Context(), req, userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToResponse(*anime))
}

// Update applies a partial edit to a catalog entry (admin only).
// PUT /api/animes/:anime_id
func (h *AnimeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid anime ID"})
		return
	}

	var req dto.UpdateAnimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	anime, err := h.animeService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "anime not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToResponse(*anime))
}

// Delete removes a catalog entry and all votes referencing it (admin only).
// DELETE /api/animes/:anime_id
func (h *AnimeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid anime ID"})
		return
	}

	if err := h.animeService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "anime not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "anime deleted successfully"})
}
