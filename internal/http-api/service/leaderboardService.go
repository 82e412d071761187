package service

import (
	"context"

	"animevote/internal/http-api/cache"
	"animevote/internal/http-api/dto"
	"animevote/internal/http-api/repository"
)

const (
	DefaultTopN = 3
	MaxTopN     = 10
)

type LeaderboardService interface {
	TopN(ctx context.Context, n int) ([]dto.RankedAnime, error)
}

type leaderboardService struct {
	animeRepo repository.AnimeRepository
	lbCache   *cache.LeaderboardCache
}

func NewLeaderboardService(animeRepo repository.AnimeRepository, lbCache *cache.LeaderboardCache) LeaderboardService {
	return &leaderboardService{
		animeRepo: animeRepo,
		lbCache:   lbCache,
	}
}

// TopN returns the n most voted animes with positional ranks 1..len.
// Ties get distinct sequential ranks, not shared ranks; the ordering is
// deterministic because the repository tie-breaks equal tallies by
// created_at (newest first) and then id. Fewer than n entries come back
// when the catalog is smaller than n.
func (s *leaderboardService) TopN(ctx context.Context, n int) ([]dto.RankedAnime, error) {
	if n < 1 {
		n = DefaultTopN
	}
	if n > MaxTopN {
		n = MaxTopN
	}

	if ranked, ok := s.lbCache.Get(ctx, n); ok {
		return ranked, nil
	}

	animes, err := s.animeRepo.Top(ctx, n)
	if err != nil {
		return nil, err
	}

	ranked := make([]dto.RankedAnime, 0, len(animes))
	for i, a := range animes {
		ranked = append(ranked, dto.RankedAnime{
			AnimeResponse: dto.FromModelToResponse(a),
			Rank:          i + 1,
		})
	}

	s.lbCache.Set(ctx, n, ranked)
	return ranked, nil
}
