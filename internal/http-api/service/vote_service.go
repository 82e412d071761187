package service

import (
	"context"
	"errors"

	"animevote/internal/http-api/cache"
	"animevote/internal/http-api/dto"
	"animevote/internal/http-api/models"
	"animevote/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrAnimeNotFound = errors.New("anime not found")
	ErrAlreadyVoted  = errors.New("already voted for this anime")
)

type VoteService interface {
	CastVote(ctx context.Context, userID string, animeID int64) error
	ListUserVotes(ctx context.Context, userID string) ([]dto.VoteResponse, error)
}

type voteService struct {
	voteRepo  repository.VoteRepository
	animeRepo repository.AnimeRepository
	lbCache   *cache.LeaderboardCache
}

func NewVoteService(voteRepo repository.VoteRepository, animeRepo repository.AnimeRepository, lbCache *cache.LeaderboardCache) VoteService {
	return &voteService{
		voteRepo:  voteRepo,
		animeRepo: animeRepo,
		lbCache:   lbCache,
	}
}

// CastVote records one vote from userID for animeID and bumps the tally
// by exactly 1. The operation is deliberately not idempotent: a repeat
// vote is rejected, never silently absorbed. The pre-check gives the
// common duplicate a clean answer without touching the ledger; the
// unique index inside CastVote catches the race where two requests from
// the same user pass the pre-check concurrently.
func (s *voteService) CastVote(ctx context.Context, userID string, animeID int64) error {
	// Anime must exist before anything is written.
	if _, err := s.animeRepo.GetByID(ctx, animeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnimeNotFound
		}
		return err
	}

	voted, err := s.voteRepo.Exists(ctx, userID, animeID)
	if err != nil {
		return err
	}
	if voted {
		return ErrAlreadyVoted
	}

	vote := &models.Vote{
		UserID:  userID,
		AnimeID: animeID,
	}
	if err := s.voteRepo.CastVote(ctx, vote); err != nil {
		if errors.Is(err, repository.ErrDuplicateVote) {
			return ErrAlreadyVoted
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnimeNotFound
		}
		return err
	}

	// The ordering may have changed; drop cached rankings.
	s.lbCache.Invalidate(ctx)
	return nil
}

func (s *voteService) ListUserVotes(ctx context.Context, userID string) ([]dto.VoteResponse, error) {
	votes, err := s.voteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.VoteResponse, 0, len(votes))
	for _, v := range votes {
		responses = append(responses, dto.FromModelToVoteResponse(v))
	}
	return responses, nil
}
