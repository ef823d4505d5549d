package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/reelforge/reels-ms-go/internal/ai"
	"github.com/reelforge/reels-ms-go/internal/cache"
	"github.com/reelforge/reels-ms-go/internal/config"
	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/handler/api"
	"github.com/reelforge/reels-ms-go/internal/lock"
	"github.com/reelforge/reels-ms-go/internal/logger"
	cMiddleware "github.com/reelforge/reels-ms-go/internal/middleware"
	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/ratelimit"
	"github.com/reelforge/reels-ms-go/internal/renderer"
	"github.com/reelforge/reels-ms-go/internal/repository/mariadb"
	"github.com/reelforge/reels-ms-go/internal/storage"
	"github.com/reelforge/reels-ms-go/internal/task"
	projectSvc "github.com/reelforge/reels-ms-go/internal/usecase/project"
	"github.com/reelforge/reels-ms-go/internal/videogen"
	"github.com/reelforge/reels-ms-go/internal/voice"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(cfg.Bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.Bucket, err)
		os.Exit(1)
	}

	projectRepo := mariadb.NewProjectRepository(database.DB)
	sceneRepo := mariadb.NewSceneRepository(database.DB)
	usageRepo := mariadb.NewUsageRepository(database.DB)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	var limiter port.RateLimiter
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		limiter = ratelimit.NewRedisLimiter(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
		logger.Info(ctx, "✅  Redis cache, task queue and rate limiting enabled")
	} else {
		ca = cache.NewNoopCache()
		dispatcher = task.NewNoopDispatcher()
		limiter = ratelimit.NewMemoryLimiter()
		logger.Warn(ctx, "⚠️  Redis not configured — caching and queueing are disabled, rate limits are per-instance")
	}

	gateway := ai.NewGateway(ai.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel))
	voiceClient := voice.NewClient(cfg.TTSBaseURL, cfg.TTSAPIKey)
	videoClient := videogen.NewClient(cfg.VideoWorkerAddr)
	locker := lock.NewKeyedMutex()

	creatorSvc := projectSvc.NewProjectCreator(projectRepo, sceneRepo, gateway, limiter, usageRepo)
	r.Post("/projects", api.CreateProjectHandler(creatorSvc))

	scenesGenSvc := projectSvc.NewScenesGenerator(projectRepo, sceneRepo, gateway, limiter, usageRepo)
	r.Post("/scenes/generate", api.GenerateScenesHandler(scenesGenSvc))

	getterSvc := projectSvc.NewProjectGetter(projectRepo, sceneRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	deleterSvc := projectSvc.NewProjectDeleter(projectRepo, sceneRepo, ca, strg, cfg.Bucket)

	r.Route("/projects/{projectID}", func(r chi.Router) {
		r.Use(cMiddleware.WithProjectID())

		r.Get("/", api.GetProjectHandler(rendererSvc, getterSvc))
		r.Delete("/", api.DeleteProjectHandler(deleterSvc))

		inserterSvc := projectSvc.NewSceneInserter(projectRepo, sceneRepo, ca, locker)
		r.Post("/scenes", api.InsertSceneHandler(inserterSvc))

		reordererSvc := projectSvc.NewSceneReorderer(projectRepo, sceneRepo, ca, locker)
		r.Put("/scenes/order", api.ReorderScenesHandler(reordererSvc))

		r.Route("/scenes/{sceneID}", func(r chi.Router) {
			r.Use(cMiddleware.WithSceneID())

			updaterSvc := projectSvc.NewSceneUpdater(projectRepo, sceneRepo, ca)
			r.Patch("/", api.UpdateSceneHandler(updaterSvc))

			sceneDeleterSvc := projectSvc.NewSceneDeleter(projectRepo, sceneRepo, ca, locker)
			r.Delete("/", api.DeleteSceneHandler(sceneDeleterSvc))

			regeneratorSvc := projectSvc.NewSceneRegenerator(projectRepo, sceneRepo, gateway, limiter, usageRepo, ca)
			r.Post("/regenerate", api.RegenerateSceneHandler(regeneratorSvc))

			narrationSvc := projectSvc.NewNarrationSynthesiser(projectRepo, sceneRepo, voiceClient, limiter, usageRepo, ca, cfg.TTSVoiceID, cfg.TTSModelID)
			r.Post("/narration", api.SynthesizeNarrationHandler(narrationSvc))
		})

		previewRequesterSvc := projectSvc.NewPreviewRequester(projectRepo, sceneRepo, dispatcher)
		r.Post("/preview", api.RequestPreviewHandler(previewRequesterSvc))

		previewStatusSvc := projectSvc.NewPreviewStatusGetter(projectRepo)
		r.Get("/preview", api.PreviewStatusHandler(previewStatusSvc))

		videoRequesterSvc := projectSvc.NewVideoRequester(projectRepo, videoClient, ca)
		r.Post("/video", api.RequestVideoHandler(videoRequesterSvc))

		videoStatusSvc := projectSvc.NewVideoStatusGetter(projectRepo, videoClient, ca)
		r.Get("/video", api.VideoStatusHandler(videoStatusSvc))
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioPublicBase,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
