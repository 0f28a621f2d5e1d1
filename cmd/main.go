package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/config"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/repositories"
	api "github.com/Dosada05/swiss-tournament/routes"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	if err := db.Migrate(ctx, dbConn); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info("database connection established")

	// Инициализация WebSocket Hub
	// Хаб живёт до завершения Shutdown, а не до сигнала.
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	wsHub := brackets.NewHub(logger)
	go wsHub.Run(hubCtx)

	var notifier services.Notifier = wsHub
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		relay := brackets.NewRedisRelay(rdb, wsHub, logger)
		if err := relay.Start(ctx); err != nil {
			return err
		}
		notifier = relay
		logger.Info("redis relay started")
	}

	// Архивирование таблицы после каждого тура (Cloudflare R2), если настроено
	var archiver services.RoundArchiver
	if cfg.R2.Enabled() {
		uploader, err := storage.NewCloudflareR2Uploader(ctx, cfg.R2)
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		archiver = storage.NewStandingsArchiver(uploader)
		logger.Info("Cloudflare R2 archiver initialized", slog.String("bucket", cfg.R2.BucketName))
	}

	// Инициализация репозиториев
	transactor := repositories.NewPostgresTransactor(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	competitorRepo := repositories.NewPostgresCompetitorRepository(dbConn)
	roundRepo := repositories.NewPostgresRoundRepository(dbConn)
	pairingRepo := repositories.NewPostgresPairingRepository(dbConn)

	// Инициализация сервисов
	authService := services.NewAuthService(userRepo)
	tournamentService := services.NewTournamentService(transactor, tournamentRepo, competitorRepo, roundRepo, userRepo, notifier, logger)
	competitorService := services.NewCompetitorService(transactor, tournamentRepo, competitorRepo, pairingRepo, notifier, logger)
	generator := brackets.NewSwissGenerator()
	roundService := services.NewRoundService(transactor, tournamentRepo, competitorRepo, roundRepo, pairingRepo, generator, notifier, archiver, logger)
	logger.Info("services initialized", slog.String("pairing_system", generator.GetName()))

	jwtManager := middleware.NewJWTManager(cfg.JWTSecretKey, middleware.DefaultTokenTTL)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		jwtManager.Authenticate,
		cfg.CORSAllowedOrigins,
		handlers.NewAuthHandler(authService, jwtManager),
		handlers.NewTournamentHandler(tournamentService),
		handlers.NewCompetitorHandler(competitorService),
		handlers.NewRoundHandler(roundService),
		handlers.NewWebSocketHandler(wsHub, tournamentService, nil, logger),
	)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 120 * time.Second,
		ErrorLog:    slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
	if err := server.Shutdown(shutdownCtx); err != nil {
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("failed to force close server", slog.Any("error", closeErr))
		}
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server shutdown complete")
	return nil
}
