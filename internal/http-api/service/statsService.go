package service

import (
	"context"
	"time"

	"animevote/internal/http-api/dto"
	"animevote/internal/http-api/repository"
)

type StatsService interface {
	Overview(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	userRepo  repository.UserRepository
	animeRepo repository.AnimeRepository
	voteRepo  repository.VoteRepository
}

func NewStatsService(userRepo repository.UserRepository, animeRepo repository.AnimeRepository, voteRepo repository.VoteRepository) StatsService {
	return &statsService{
		userRepo:  userRepo,
		animeRepo: animeRepo,
		voteRepo:  voteRepo,
	}
}

// Overview returns site-wide counters. Active users are the distinct
// voters of the last 30 days.
func (s *statsService) Overview(ctx context.Context) (*dto.StatsResponse, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalAnimes, err := s.animeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalVotes, err := s.voteRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	activeUsers, err := s.voteRepo.CountActiveUsers(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalUsers:  totalUsers,
		TotalAnimes: totalAnimes,
		TotalVotes:  totalVotes,
		ActiveUsers: activeUsers,
	}, nil
}
