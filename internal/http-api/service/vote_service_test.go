package service

import (
	"context"
	"errors"
	"testing"

	"animevote/internal/http-api/models"
	"animevote/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestVoteService_CastVote(t *testing.T) {
	ctx := context.Background()
	anime := &models.Anime{ID: 7, Title: "Frieren", VoteCount: 5}

	t.Run("Success", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		voteRepo := new(MockVoteRepository)
		svc := NewVoteService(voteRepo, animeRepo, nil)

		animeRepo.On("GetByID", mock.Anything, int64(7)).Return(anime, nil).Once()
		voteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(false, nil).Once()
		voteRepo.On("CastVote", mock.Anything, mock.MatchedBy(func(v *models.Vote) bool {
			return v.UserID == "user-1" && v.AnimeID == 7
		})).Return(nil).Once()

		err := svc.CastVote(ctx, "user-1", 7)

		assert.NoError(t, err)
		voteRepo.AssertExpectations(t)
		animeRepo.AssertExpectations(t)
	})

	t.Run("DuplicateVote", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		voteRepo := new(MockVoteRepository)
		svc := NewVoteService(voteRepo, animeRepo, nil)

		animeRepo.On("GetByID", mock.Anything, int64(7)).Return(anime, nil).Once()
		voteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(true, nil).Once()

		err := svc.CastVote(ctx, "user-1", 7)

		assert.ErrorIs(t, err, ErrAlreadyVoted)
		// No insert and no increment must happen after a duplicate check hit
		voteRepo.AssertNotCalled(t, "CastVote", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateVoteRace", func(t *testing.T) {
		// Two requests passed the pre-check concurrently; the unique
		// index rejects the second insert and the service reports the
		// same duplicate error as the pre-check path.
		animeRepo := new(MockAnimeRepository)
		voteRepo := new(MockVoteRepository)
		svc := NewVoteService(voteRepo, animeRepo, nil)

		animeRepo.On("GetByID", mock.Anything, int64(7)).Return(anime, nil).Once()
		voteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(false, nil).Once()
		voteRepo.On("CastVote", mock.Anything, mock.Anything).Return(repository.ErrDuplicateVote).Once()

		err := svc.CastVote(ctx, "user-1", 7)

		assert.ErrorIs(t, err, ErrAlreadyVoted)
	})

	t.Run("AnimeNotFound", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		voteRepo := new(MockVoteRepository)
		svc := NewVoteService(voteRepo, animeRepo, nil)

		animeRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound).Once()

		err := svc.CastVote(ctx, "user-1", 99)

		assert.ErrorIs(t, err, ErrAnimeNotFound)
		voteRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
		voteRepo.AssertNotCalled(t, "CastVote", mock.Anything, mock.Anything)
	})

	t.Run("AnimeDeletedBetweenCheckAndInsert", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		voteRepo := new(MockVoteRepository)
		svc := NewVoteService(voteRepo, animeRepo, nil)

		animeRepo.On("GetByID", mock.Anything, int64(7)).Return(anime, nil).Once()
		voteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(false, nil).Once()
		voteRepo.On("CastVote", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound).Once()

		err := svc.CastVote(ctx, "user-1", 7)

		assert.ErrorIs(t, err, ErrAnimeNotFound)
	})

	t.Run("StoreError", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		voteRepo := new(MockVoteRepository)
		svc := NewVoteService(voteRepo, animeRepo, nil)

		storeErr := errors.New("connection refused")
		animeRepo.On("GetByID", mock.Anything, int64(7)).Return(anime, nil).Once()
		voteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(false, storeErr).Once()

		err := svc.CastVote(ctx, "user-1", 7)

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestVoteService_ListUserVotes(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		voteRepo := new(MockVoteRepository)
		svc := NewVoteService(voteRepo, animeRepo, nil)

		voteRepo.On("ListByUser", mock.Anything, "user-1").Return([]models.Vote{
			{ID: 1, UserID: "user-1", AnimeID: 7},
			{ID: 2, UserID: "user-1", AnimeID: 3},
		}, nil).Once()

		votes, err := svc.ListUserVotes(ctx, "user-1")

		assert.NoError(t, err)
		assert.Len(t, votes, 2)
		assert.Equal(t, int64(7), votes[0].AnimeID)
	})

	t.Run("Empty", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		voteRepo := new(MockVoteRepository)
		svc := NewVoteService(voteRepo, animeRepo, nil)

		voteRepo.On("ListByUser", mock.Anything, "user-2").Return([]models.Vote{}, nil).Once()

		votes, err := svc.ListUserVotes(ctx, "user-2")

		assert.NoError(t, err)
		assert.Empty(t, votes)
	})
}
