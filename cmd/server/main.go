package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/common/logger"
	"basegraph.app/planboard/common/otel"
	"basegraph.app/planboard/core/config"
	"basegraph.app/planboard/core/db"
	"basegraph.app/planboard/internal/cache"
	"basegraph.app/planboard/internal/http/middleware"
	httprouter "basegraph.app/planboard/internal/http/router"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/service"
	"basegraph.app/planboard/internal/storage"
	"basegraph.app/planboard/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	policy, ok := model.ParseCommentEditPolicy(cfg.CommentPolicy)
	if !ok {
		slog.ErrorContext(ctx, "invalid comment edit policy", "policy", cfg.CommentPolicy)
		os.Exit(1)
	}
	// config.Load already validated the zone.
	analyticsTZ, _ := time.LoadLocation(cfg.AnalyticsTZ)

	slog.InfoContext(ctx, "planboard starting",
		"env", cfg.Env,
		"comment_policy", policy,
		"analytics_tz", analyticsTZ.String())

	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	commentCache, closeCache := setupCommentCache(ctx, cfg.Redis)
	defer closeCache()

	stores := store.NewStores(database.Queries())
	files := storage.NewService(stores.Files(), storage.Config{
		DocumentsBucket: cfg.Storage.DocumentsBucket,
		ImagesBucket:    cfg.Storage.ImagesBucket,
		MaxUploadBytes:  cfg.Storage.MaxUploadBytes,
		URLs: storage.URLBuilder{
			Endpoint:  cfg.Storage.PublicEndpoint,
			ProjectID: cfg.Storage.ProjectID,
		},
	})

	services := service.NewServices(stores, service.NewTxRunner(database), service.Options{
		WorkOS:        cfg.WorkOS,
		CommentPolicy: policy,
		AnalyticsTZ:   analyticsTZ,
		Storage:       files,
		CommentCache:  commentCache,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// setupCommentCache connects to redis when configured. Comments are served
// straight from postgres otherwise, and also when redis is unreachable at boot.
func setupCommentCache(ctx context.Context, cfg config.RedisConfig) (cache.CommentCache, func()) {
	noop := func() {}
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "redis disabled, comment cache off")
		return cache.NewNoopCommentCache(), noop
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis unreachable, comment cache off", "error", err)
		_ = client.Close()
		return cache.NewNoopCommentCache(), noop
	}
	slog.InfoContext(ctx, "redis connected", "comment_cache_ttl", cfg.CommentCacheTTL)

	return cache.NewRedisCommentCache(client, cfg.CommentCacheTTL, slog.Default()), func() {
		_ = client.Close()
	}
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.MaxMultipartMemory = cfg.Storage.MaxUploadBytes

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		DashboardURL:   cfg.DashboardURL,
		IsProduction:   cfg.IsProduction(),
		RequestTimeout: cfg.RequestTimeout,
	})

	return router
}

const banner = `
 ___ _              _                      _
| _ \ |__ _ _ _  __| |__  ___  __ _ _ _ __| |
|  _/ / _' | ' \/ _' | '_ \/ _ \/ _' | '_/ _' |
|_| |_\__,_|_||_\__,_|_.__/\___/\__,_|_| \__,_|
`
