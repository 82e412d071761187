package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animevote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// RegisterRoutes registers vote routes (all require authentication,
// applied by the caller).
func (h *VoteHandler) RegisterRoutes(animes, votes *gin.RouterGroup) {
	animes.POST("/:anime_id/vote", h.CastVote)
	votes.GET("/me", h.ListMine)
}

// CastVote records the caller's vote for an anime. One vote per user
// per anime; a repeat attempt is a 400, not a no-op.
// POST /api/animes/:anime_id/vote
func (h *VoteHandler) CastVote(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid anime ID"})
		return
	}

	// Get user ID from context (set by AuthMiddleware)
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	if err := h.voteService.CastVote(c.Request.Context(), userID.(string), animeID); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyVoted):
			c.JSON(http.StatusBadRequest, gin.H{"message": "already voted for this anime"})
		case errors.Is(err, service.ErrAnimeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "anime not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vote registered successfully"})
}

// ListMine returns the caller's votes so the frontend can mark which
// animes are already voted.
// GET /api/votes/me
func (h *VoteHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	votes, err := h.voteService.ListUserVotes(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": votes})
}
