package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"animevote/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateVote is returned when the (user, anime) pair already has
// a vote row. Surfaced either by the service's pre-check or by the
// unique index when two requests race.
var ErrDuplicateVote = errors.New("vote already exists for this user and anime")

type VoteRepository interface {
	CastVote(ctx context.Context, vote *models.Vote) error
	Exists(ctx context.Context, userID string, animeID int64) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]models.Vote, error)
	CountAll(ctx context.Context) (int64, error)
	CountActiveUsers(ctx context.Context, since time.Time) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// CastVote inserts the vote row and bumps the anime tally by exactly 1
// in a single transaction, so the ledger and the tally never diverge.
// A unique-violation on the composite (user_id, anime_id) index is
// translated to ErrDuplicateVote so callers do not need to know about
// Postgres error codes; gorm.ErrRecordNotFound means the anime vanished
// between the handler's lookup and the insert.
func (r *voteRepository) CastVote(ctx context.Context, vote *models.Vote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateVote
			}
			return fmt.Errorf("create vote: %w", err)
		}

		result := tx.Model(&models.Anime{}).
			Where("id = ?", vote.AnimeID).
			UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1))
		if result.Error != nil {
			return fmt.Errorf("increment vote count: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (r *voteRepository) Exists(ctx context.Context, userID string, animeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *voteRepository) ListByUser(ctx context.Context, userID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func (r *voteRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).Count(&count).Error
	return count, err
}

// CountActiveUsers counts distinct users that have voted since the
// given time.
func (r *voteRepository) CountActiveUsers(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).
		Where("created_at >= ?", since).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}
