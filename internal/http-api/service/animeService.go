package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"animevote/internal/http-api/cache"
	"animevote/internal/http-api/dto"
	"animevote/internal/http-api/models"
	"animevote/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrInvalidStatus = errors.New("invalid anime status")

type AnimeService interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Anime, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Anime, error)
	Create(ctx context.Context, req dto.CreateAnimeDTO, addedBy string) (*models.Anime, error)
	Update(ctx context.Context, id int64, req dto.UpdateAnimeDTO) (*models.Anime, error)
	Delete(ctx context.Context, id int64) error
}

type animeService struct {
	animeRepo repository.AnimeRepository
	lbCache   *cache.LeaderboardCache
}

func NewAnimeService(animeRepo repository.AnimeRepository, lbCache *cache.LeaderboardCache) AnimeService {
	return &animeService{
		animeRepo: animeRepo,
		lbCache:   lbCache,
	}
}

func (s *animeService) GetAll(ctx context.Context, page, limit int) ([]models.Anime, int64, error) {
	return s.animeRepo.GetAll(ctx, page, limit)
}

func (s *animeService) GetByID(ctx context.Context, id int64) (*models.Anime, error) {
	a, err := s.animeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create adds a catalog entry. New entries always start at episode 0,
// status planning and zero votes, whatever the client sends.
func (s *animeService) Create(ctx context.Context, req dto.CreateAnimeDTO, addedBy string) (*models.Anime, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("title and description are required")
	}
	if req.TotalEpisodes != nil && *req.TotalEpisodes < 1 {
		return nil, errors.New("total_episodes must be positive")
	}

	anime := req.ToModel()
	anime.Title = strings.TrimSpace(anime.Title)
	anime.AddedBy = addedBy

	if err := s.animeRepo.Create(ctx, &anime); err != nil {
		return nil, err
	}

	if len(req.Genres) > 0 {
		if err := s.animeRepo.ReplaceGenres(ctx, &anime, req.Genres); err != nil {
			return nil, err
		}
	}

	s.lbCache.Invalidate(ctx)
	return &anime, nil
}

// Update applies the non-nil fields of req to the existing record.
func (s *animeService) Update(ctx context.Context, id int64, req dto.UpdateAnimeDTO) (*models.Anime, error) {
	existing, err := s.animeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
	}
	if req.CurrentEpisode != nil && *req.CurrentEpisode < 0 {
		return nil, errors.New("current_episode must be non-negative")
	}
	if req.TotalEpisodes != nil && *req.TotalEpisodes < 1 {
		return nil, errors.New("total_episodes must be positive")
	}

	req.ApplyTo(existing)

	if err := s.animeRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if req.Genres != nil {
		if err := s.animeRepo.ReplaceGenres(ctx, existing, req.Genres); err != nil {
			return nil, err
		}
	}

	s.lbCache.Invalidate(ctx)
	return existing, nil
}

// Delete removes the anime and cascades the deletion of its votes.
func (s *animeService) Delete(ctx context.Context, id int64) error {
	if err := s.animeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnimeNotFound
		}
		return err
	}

	s.lbCache.Invalidate(ctx)
	return nil
}
