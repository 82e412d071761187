package service

import (
	"context"
	"testing"

	"animevote/internal/http-api/dto"
	"animevote/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestAnimeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		svc := NewAnimeService(animeRepo, nil)

		animeRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Anime) bool {
			// new entries always start at planning / episode 0 / zero votes
			return a.Title == "Frieren" &&
				a.Status == models.StatusPlanning &&
				a.CurrentEpisode == 0 &&
				a.VoteCount == 0 &&
				a.AddedBy == "admin-id"
		})).Return(nil).Once()
		animeRepo.On("ReplaceGenres", mock.Anything, mock.Anything, []string{"Fantasy"}).Return(nil).Once()

		anime, err := svc.Create(ctx, dto.CreateAnimeDTO{
			Title:       "Frieren",
			Description: "Journey after the journey",
			Genres:      []string{"Fantasy"},
		}, "admin-id")

		assert.NoError(t, err)
		assert.Equal(t, "Frieren", anime.Title)
		animeRepo.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		svc := NewAnimeService(animeRepo, nil)

		_, err := svc.Create(ctx, dto.CreateAnimeDTO{Title: "  ", Description: "x"}, "admin-id")
		assert.Error(t, err)

		_, err = svc.Create(ctx, dto.CreateAnimeDTO{Title: "x", Description: ""}, "admin-id")
		assert.Error(t, err)

		animeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("InvalidTotalEpisodes", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		svc := NewAnimeService(animeRepo, nil)

		_, err := svc.Create(ctx, dto.CreateAnimeDTO{
			Title:         "x",
			Description:   "y",
			TotalEpisodes: intPtr(0),
		}, "admin-id")

		assert.Error(t, err)
	})
}

func TestAnimeService_Update(t *testing.T) {
	ctx := context.Background()
	existing := &models.Anime{ID: 1, Title: "Old", Description: "d", Status: models.StatusPlanning}

	t.Run("PartialUpdate", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		svc := NewAnimeService(animeRepo, nil)

		animeRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil).Once()
		animeRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Anime) bool {
			return a.Title == "New" && a.Status == models.StatusWatching && a.CurrentEpisode == 4
		})).Return(nil).Once()

		anime, err := svc.Update(ctx, 1, dto.UpdateAnimeDTO{
			Title:          strPtr("New"),
			Status:         strPtr(models.StatusWatching),
			CurrentEpisode: intPtr(4),
		})

		assert.NoError(t, err)
		assert.Equal(t, "New", anime.Title)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		svc := NewAnimeService(animeRepo, nil)

		animeRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil).Once()

		_, err := svc.Update(ctx, 1, dto.UpdateAnimeDTO{Status: strPtr("binging")})

		assert.ErrorIs(t, err, ErrInvalidStatus)
		animeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		svc := NewAnimeService(animeRepo, nil)

		animeRepo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Update(ctx, 9, dto.UpdateAnimeDTO{Title: strPtr("x")})

		assert.ErrorIs(t, err, ErrAnimeNotFound)
	})
}

func TestAnimeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		svc := NewAnimeService(animeRepo, nil)

		animeRepo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		animeRepo := new(MockAnimeRepository)
		svc := NewAnimeService(animeRepo, nil)

		animeRepo.On("Delete", mock.Anything, int64(9)).Return(gorm.ErrRecordNotFound).Once()

		assert.ErrorIs(t, svc.Delete(ctx, 9), ErrAnimeNotFound)
	})
}

func TestStatsService_Overview(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	animeRepo := new(MockAnimeRepository)
	voteRepo := new(MockVoteRepository)
	svc := NewStatsService(userRepo, animeRepo, voteRepo)

	userRepo.On("Count", mock.Anything).Return(int64(42), nil).Once()
	animeRepo.On("Count", mock.Anything).Return(int64(12), nil).Once()
	voteRepo.On("CountAll", mock.Anything).Return(int64(300), nil).Once()
	voteRepo.On("CountActiveUsers", mock.Anything, mock.Anything).Return(int64(17), nil).Once()

	stats, err := svc.Overview(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(12), stats.TotalAnimes)
	assert.Equal(t, int64(300), stats.TotalVotes)
	assert.Equal(t, int64(17), stats.ActiveUsers)
}
