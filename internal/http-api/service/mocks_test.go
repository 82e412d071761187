package service

import (
	"context"
	"time"

	"animevote/internal/http-api/models"

	"github.com/stretchr/testify/mock"
)

// Shared repository mocks for the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAnimeRepository struct {
	mock.Mock
}

func (m *MockAnimeRepository) GetAll(ctx context.Context, page, limit int) ([]models.Anime, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Anime), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnimeRepository) GetByID(ctx context.Context, id int64) (*models.Anime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Anime), args.Error(1)
}

func (m *MockAnimeRepository) Create(ctx context.Context, a *models.Anime) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnimeRepository) Update(ctx context.Context, a *models.Anime) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnimeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAnimeRepository) Top(ctx context.Context, n int) ([]models.Anime, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Anime), args.Error(1)
}

func (m *MockAnimeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnimeRepository) ReplaceGenres(ctx context.Context, a *models.Anime, names []string) error {
	args := m.Called(ctx, a, names)
	return args.Error(0)
}

type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) CastVote(ctx context.Context, vote *models.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) Exists(ctx context.Context, userID string, animeID int64) (bool, error) {
	args := m.Called(ctx, userID, animeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoteRepository) ListByUser(ctx context.Context, userID string) ([]models.Vote, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vote), args.Error(1)
}

func (m *MockVoteRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoteRepository) CountActiveUsers(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}
