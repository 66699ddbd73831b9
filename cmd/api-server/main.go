package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"ratehub/database"
	"ratehub/internal/auth"
	"ratehub/internal/cache"
	"ratehub/internal/config"
	"ratehub/internal/httpapi/handler"
	"ratehub/internal/httpapi/middleware"
	"ratehub/internal/httpapi/repository"
	"ratehub/internal/httpapi/service"
	"ratehub/internal/notify"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	titleRepo := repository.NewTitleRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Collaborators
	signer := auth.NewCodeSigner(cfg.ConfirmationSecret)
	notifier := newNotifier(cfg, logger)
	titleCache := cache.NewTitleCache(newRedisClient(cfg, logger), time.Duration(cfg.CacheTTL)*time.Second)

	// Services
	authService := service.NewAuthService(userRepo, signer, notifier, logger, cfg)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	genreService := service.NewGenreService(genreRepo)
	titleService := service.NewTitleService(titleRepo, categoryRepo, genreRepo, titleCache, time.Now)
	reviewService := service.NewReviewService(reviewRepo, titleRepo, titleCache)
	commentService := service.NewCommentService(commentRepo, reviewRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth", middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst))
	handler.NewAuthHandler(authService).RegisterRoutes(authGroup)

	public := v1.Group("")
	authed := v1.Group("", middleware.AuthMiddleware(authService, userRepo))

	handler.NewCategoryHandler(categoryService).RegisterRoutes(public, authed)
	handler.NewGenreHandler(genreService).RegisterRoutes(public, authed)
	handler.NewTitleHandler(titleService).RegisterRoutes(public, authed)
	handler.NewReviewHandler(reviewService).RegisterRoutes(public, authed)
	handler.NewCommentHandler(commentService).RegisterRoutes(public, authed)
	handler.NewUserHandler(userService).RegisterRoutes(authed)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("api server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}

// newNotifier picks SMTP delivery when a relay is configured and falls
// back to log delivery otherwise.
func newNotifier(cfg *config.Config, logger *slog.Logger) notify.Notifier {
	if cfg.SMTPAddr != "" {
		return notify.NewSMTPNotifier(cfg.SMTPAddr, cfg.SMTPFrom)
	}
	return notify.NewLogNotifier(logger)
}

// newRedisClient returns nil when no redis is configured; the title cache
// treats a nil client as "cache off".
func newRedisClient(cfg *config.Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, caching disabled", "error", err)
		return nil
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	return redis.NewClient(opts)
}
