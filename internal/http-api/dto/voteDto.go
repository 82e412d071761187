package dto

import (
	"time"

	"animevote/internal/http-api/models"
)

// VoteResponse: one vote cast by the current user
type VoteResponse struct {
	AnimeID   int64     `json:"anime_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToVoteResponse(v models.Vote) VoteResponse {
	return VoteResponse{
		AnimeID:   v.AnimeID,
		CreatedAt: v.CreatedAt,
	}
}
