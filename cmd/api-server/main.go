package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"animevote/database"
	"animevote/internal/config"
	"animevote/internal/http-api/cache"
	"animevote/internal/http-api/handler"
	"animevote/internal/http-api/middleware"
	"animevote/internal/http-api/repository"
	"animevote/internal/http-api/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// 2. Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// 3. Leaderboard cache (optional; disabled when REDIS_URL is empty)
	lbCache, err := cache.NewLeaderboardCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer lbCache.Close()
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, leaderboard cache disabled")
	}

	// 4. Repositories
	userRepo := repository.NewUserRepository(db)
	animeRepo := repository.NewAnimeRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	// 5. Services
	authService := service.NewAuthService(userRepo, cfg)
	animeService := service.NewAnimeService(animeRepo, lbCache)
	voteService := service.NewVoteService(voteRepo, animeRepo, lbCache)
	leaderboardService := service.NewLeaderboardService(animeRepo, lbCache)
	statsService := service.NewStatsService(userRepo, animeRepo, voteRepo)

	// 6. Handlers
	authHandler := handler.NewAuthHandler(authService)
	animeHandler := handler.NewAnimeHandler(animeService)
	voteHandler := handler.NewVoteHandler(voteService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	statsHandler := handler.NewStatsHandler(statsService)

	// 7. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	authMW := middleware.AuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(rateLimiter.Middleware())
		authHandler.RegisterRoutes(auth)

		animes := api.Group("/animes")
		animeHandler.RegisterRoutes(animes, authMW, userRepo)

		// vote routes are authenticated and rate limited
		votedAnimes := api.Group("/animes")
		votedAnimes.Use(authMW, rateLimiter.Middleware())
		votes := api.Group("/votes")
		votes.Use(authMW)
		voteHandler.RegisterRoutes(votedAnimes, votes)

		leaderboard := api.Group("/leaderboard")
		leaderboardHandler.RegisterRoutes(leaderboard)

		statsHandler.RegisterRoutes(api)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
