package repository

import (
	"context"
	"fmt"

	"animevote/internal/http-api/models"

	"gorm.io/gorm"
)

// Catalog ordering: tally first, then newest first, then id as the
// final deterministic key. Every listing and the leaderboard share it
// so rankings never disagree between endpoints.
const catalogOrder = "vote_count DESC, created_at DESC, id DESC"

type AnimeRepository interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Anime, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Anime, error)
	Create(ctx context.Context, a *models.Anime) error
	Update(ctx context.Context, a *models.Anime) error
	Delete(ctx context.Context, id int64) error
	Top(ctx context.Context, n int) ([]models.Anime, error)
	Count(ctx context.Context) (int64, error)
	ReplaceGenres(ctx context.Context, a *models.Anime, names []string) error
}

type animeRepository struct {
	db *gorm.DB
}

func NewAnimeRepository(db *gorm.DB) AnimeRepository {
	return &animeRepository{db: db}
}

func (r *animeRepository) GetAll(ctx context.Context, page, limit int) ([]models.Anime, int64, error) {
	var list []models.Anime
	var total int64

	// Count total records
	if err := r.db.WithContext(ctx).Model(&models.Anime{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Calculate offset
	offset := (page - 1) * limit

	// Fetch paginated results
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Order(catalogOrder).
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *animeRepository) GetByID(ctx context.Context, id int64) (*models.Anime, error) {
	var a models.Anime
	if err := r.db.WithContext(ctx).Preload("Genres").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *animeRepository) Create(ctx context.Context, a *models.Anime) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create anime: %w", err)
	}
	// GORM will populate a.ID and a.CreatedAt
	return nil
}

func (r *animeRepository) Update(ctx context.Context, a *models.Anime) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("update anime: %w", err)
	}
	return nil
}

// Delete removes the anime and every vote referencing it in one
// transaction, keeping the tally invariant after deletion.
func (r *animeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("anime_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return fmt.Errorf("delete votes for anime: %w", err)
		}
		result := tx.Delete(&models.Anime{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete anime: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *animeRepository) Top(ctx context.Context, n int) ([]models.Anime, error) {
	var list []models.Anime
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Order(catalogOrder).
		Limit(n).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("top animes: %w", err)
	}
	return list, nil
}

func (r *animeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Anime{}).Count(&count).Error
	return count, err
}

// ReplaceGenres resolves genre names to rows (creating missing ones)
// and replaces the anime's association with exactly that set.
func (r *animeRepository) ReplaceGenres(ctx context.Context, a *models.Anime, names []string) error {
	tx := r.db.WithContext(ctx).Begin()

	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		var g models.Genre
		if err := tx.Where(models.Genre{Name: name}).FirstOrCreate(&g).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("resolve genre %q: %w", name, err)
		}
		genres = append(genres, g)
	}

	if err := tx.Model(a).Association("Genres").Replace(&genres); err != nil {
		tx.Rollback()
		return fmt.Errorf("replace genres: %w", err)
	}
	return tx.Commit().Error
}
