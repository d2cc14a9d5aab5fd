package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/config"
	"github.com/DivyanshGarg380/Backend-Project/internal/db"
	"github.com/DivyanshGarg380/Backend-Project/internal/handler"
	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
	"github.com/DivyanshGarg380/Backend-Project/internal/router"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
	"github.com/DivyanshGarg380/Backend-Project/internal/storage"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "vidtube-api")
	logger := middleware.Logger

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	store, err := storage.NewS3Storage(ctx, cfg.ObjectStore)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure object storage")
	}

	handler.InitMetrics(pool)

	// Repositories
	userRepo := repository.NewUserRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)
	tweetRepo := repository.NewTweetRepo(pool)
	likeRepo := repository.NewLikeRepo(pool)
	subRepo := repository.NewSubscriptionRepo(pool)

	// Services
	tokens := service.NewTokenService(cfg)
	media := service.NewMediaService(store)
	authSvc := service.NewAuthService(userRepo, tokens)
	userSvc := service.NewUserService(userRepo, cache)
	videoSvc := service.NewVideoService(videoRepo, cache)
	commentSvc := service.NewCommentService(commentRepo, videoRepo)
	tweetSvc := service.NewTweetService(tweetRepo)
	likeSvc := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	subSvc := service.NewSubscriptionService(subRepo, userRepo, cache)
	dashboardSvc := service.NewDashboardService(userRepo, videoRepo)

	h := &router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc, media, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		User:         handler.NewUserHandler(userSvc, media),
		Video:        handler.NewVideoHandler(videoSvc, media),
		Comment:      handler.NewCommentHandler(commentSvc),
		Tweet:        handler.NewTweetHandler(tweetSvc),
		Like:         handler.NewLikeHandler(likeSvc),
		Subscription: handler.NewSubscriptionHandler(subSvc),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Health:       handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "VidTube API",
		ServerHeader: "VidTube",
		BodyLimit:    200 * 1024 * 1024, // video uploads
	})

	router.Setup(app, h, tokens, cfg.CORSOrigins)

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Environment).
			Msg("vidtube backend starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal().Err(err).Msg("server exited")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
