package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/config"
	"github.com/mamadbah2/stockdesk/internal/repository/mongodb"
	"github.com/mamadbah2/stockdesk/internal/repository/sheets"
	"github.com/mamadbah2/stockdesk/internal/scheduler"
	"github.com/mamadbah2/stockdesk/internal/server/handlers"
	"github.com/mamadbah2/stockdesk/internal/server/router"
	reportingsvc "github.com/mamadbah2/stockdesk/internal/service/reporting"
	"github.com/mamadbah2/stockdesk/internal/session"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
	"github.com/mamadbah2/stockdesk/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	api := inventoryapi.New(cfg.API, baseLogger.Named("client.inventory"),
		inventoryapi.WithMetrics(inventoryapi.NewMetrics(registry)))

	var mongoRepo *mongodb.MongoDBRepository
	if cfg.Session.Backend == config.SessionBackendMongo || cfg.Sweep.Enabled() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		mongoRepo, err = mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
	}

	store, closeStore := newSessionStore(ctx, cfg, mongoRepo, baseLogger)
	defer closeStore()
	sessions := session.NewManager(store, cfg.Session, baseLogger.Named("session"))

	if cfg.Sweep.Enabled() {
		var sheet reportingsvc.RowAppender
		if cfg.Sheets.Enabled() {
			sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
			if err != nil {
				baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
			}
			sheet = sheetsRepo
		}

		reportingSvc := reportingsvc.NewService(api, cfg.Sweep, mongoRepo, sheet, baseLogger.Named("svc.reporting"))
		sched := scheduler.NewScheduler(cfg.Sweep, reportingSvc, baseLogger.Named("scheduler"))
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	} else {
		baseLogger.Info("SWEEP_USERNAME not set, low-stock sweep disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	handler := handlers.NewHandler(api, sessions, baseLogger.Named("handlers"))
	engine := router.New(handler, sessions, router.Options{
		Production: cfg.IsProduction(),
		Registry:   registry,
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("api_base_url", cfg.API.BaseURL),
			zap.String("session_backend", cfg.Session.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newSessionStore builds the configured session backend and its cleanup.
func newSessionStore(ctx context.Context, cfg *config.Config, mongoRepo *mongodb.MongoDBRepository, log *zap.Logger) (session.Store, func()) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("failed to reach redis", zap.Error(err))
		}
		return session.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", zap.Error(err))
			}
		}
	case config.SessionBackendMongo:
		store := session.NewMongoStore(mongoRepo.Database())
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Fatal("failed to create session indexes", zap.Error(err))
		}
		return store, func() {}
	default:
		log.Warn("using in-memory sessions; they are lost on restart")
		return session.NewMemoryStore(), func() {}
	}
}
