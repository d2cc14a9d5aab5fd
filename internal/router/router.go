package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/DivyanshGarg380/Backend-Project/internal/handler"
	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Tweet        *handler.TweetHandler
	Like         *handler.LikeHandler
	Subscription *handler.SubscriptionHandler
	Dashboard    *handler.DashboardHandler
	Health       *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given
// Fiber app.
func Setup(app *fiber.App, h *Handlers, tokens *service.TokenService, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	requireAuth := middleware.RequireAuth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	readLimit := middleware.NewReadRateLimiter().Handler()
	authLimit := middleware.NewAuthRateLimiter().Handler()
	uploadLimit := middleware.NewUploadRateLimiter().Handler()
	writeLimit := middleware.NewWriteRateLimiter().Handler()

	// Health and metrics (before API group, no auth needed)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api/v1")

	// Auth and account routes
	users := api.Group("/users")
	users.Post("/register", h.Auth.Register, authLimit, uploadLimit)
	users.Post("/login", h.Auth.Login, authLimit)
	users.Post("/refresh-token", h.Auth.Refresh, authLimit)
	users.Post("/logout", h.Auth.Logout, requireAuth)
	users.Post("/change-password", h.Auth.ChangePassword, requireAuth)
	users.Get("/current-user", h.User.Current, requireAuth)
	users.Patch("/update-account", h.User.UpdateProfile, requireAuth)
	users.Patch("/avatar", h.User.UpdateAvatar, requireAuth, uploadLimit)
	users.Patch("/cover-image", h.User.UpdateCoverImage, requireAuth, uploadLimit)
	users.Get("/c/:username", h.User.ChannelProfile, optionalAuth, readLimit)

	// Video routes
	videos := api.Group("/videos")
	videos.Get("/", h.Video.List, optionalAuth, readLimit)
	videos.Post("/", h.Video.Publish, requireAuth, uploadLimit)
	videos.Get("/:videoId", h.Video.Get, optionalAuth, readLimit)
	videos.Patch("/:videoId", h.Video.Update, requireAuth)
	videos.Delete("/:videoId", h.Video.Delete, requireAuth)
	videos.Patch("/toggle/publish/:videoId", h.Video.TogglePublish, requireAuth, writeLimit)

	// Comment routes
	comments := api.Group("/comments")
	comments.Get("/:videoId", h.Comment.ListForVideo, optionalAuth, readLimit)
	comments.Post("/:videoId", h.Comment.Add, requireAuth, writeLimit)
	comments.Patch("/c/:commentId", h.Comment.Update, requireAuth, writeLimit)
	comments.Delete("/c/:commentId", h.Comment.Delete, requireAuth, writeLimit)

	// Tweet routes
	tweets := api.Group("/tweets")
	tweets.Post("/", h.Tweet.Create, requireAuth, writeLimit)
	tweets.Get("/user/:userId", h.Tweet.ListForUser, optionalAuth, readLimit)
	tweets.Patch("/:tweetId", h.Tweet.Update, requireAuth, writeLimit)
	tweets.Delete("/:tweetId", h.Tweet.Delete, requireAuth, writeLimit)

	// Like routes
	likes := api.Group("/likes", requireAuth)
	likes.Post("/toggle/v/:videoId", h.Like.ToggleVideo, writeLimit)
	likes.Post("/toggle/c/:commentId", h.Like.ToggleComment, writeLimit)
	likes.Post("/toggle/t/:tweetId", h.Like.ToggleTweet, writeLimit)
	likes.Get("/videos", h.Like.LikedVideos)

	// Subscription routes
	subs := api.Group("/subscriptions")
	subs.Post("/c/:channelId", h.Subscription.Toggle, requireAuth, writeLimit)
	subs.Get("/c/:channelId", h.Subscription.Subscribers, optionalAuth, readLimit)
	subs.Get("/u/:subscriberId", h.Subscription.SubscribedChannels, optionalAuth, readLimit)

	// Dashboard routes (owner-only views)
	dashboard := api.Group("/dashboard", requireAuth)
	dashboard.Get("/stats", h.Dashboard.Stats)
	dashboard.Get("/videos", h.Dashboard.Videos)
}
