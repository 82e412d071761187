package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pageOf(n int) []AnimeResponse {
	animes := make([]AnimeResponse, n)
	for i := range animes {
		animes[i] = AnimeResponse{ID: int64(i + 1)}
	}
	return animes
}

func TestNewPaginatedAnimeResponse(t *testing.T) {
	t.Run("MiddlePage", func(t *testing.T) {
		resp := NewPaginatedAnimeResponse(pageOf(12), 2, 12, 30)

		assert.Equal(t, 2, resp.Pagination.Page)
		assert.Equal(t, int64(30), resp.Pagination.Total)
		assert.True(t, resp.Pagination.HasMore)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		resp := NewPaginatedAnimeResponse(pageOf(6), 3, 12, 30)

		assert.False(t, resp.Pagination.HasMore)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
	})

	t.Run("ExactFit", func(t *testing.T) {
		// 24 items across two pages of 12: page 2 is the end
		resp := NewPaginatedAnimeResponse(pageOf(12), 2, 12, 24)

		assert.False(t, resp.Pagination.HasMore)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		resp := NewPaginatedAnimeResponse(pageOf(0), 1, 12, 0)

		assert.False(t, resp.Pagination.HasMore)
		assert.Equal(t, 0, resp.Pagination.TotalPages)
		assert.Empty(t, resp.Animes)
	})

	t.Run("PageBeyondEnd", func(t *testing.T) {
		resp := NewPaginatedAnimeResponse(pageOf(0), 9, 12, 30)

		assert.False(t, resp.Pagination.HasMore)
	})
}
