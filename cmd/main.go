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

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	httpadapter "ad-rewards/internal/adapter/http"
	"ad-rewards/internal/adapter/memory"
	"ad-rewards/internal/adapter/postgres"
	"ad-rewards/internal/adapter/telegram"
	"ad-rewards/internal/adapter/usecase"
	"ad-rewards/internal/config"
	"ad-rewards/internal/core/port"
	"ad-rewards/internal/db"
)

const demoAds = 3

// main is the entry point of the ad-rewards service. It loads configuration,
// builds the ledger storage, then runs the HTTP API and, when a token is
// configured, the Telegram bot until a termination signal arrives.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", slog.Any("error", err))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var (
		ledger port.LedgerRepository
		ads    port.AdRepository
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()

		store := postgres.NewStore(pool)
		ledger, ads = store, store
	default:
		store := memory.New()
		ledger, ads = store, store
	}
	logger.Info("ledger storage ready", slog.String("storage", cfg.Storage))

	if cfg.SeedDemo {
		seeded, err := db.SeedIfEmpty(ctx, ads, demoAds)
		if err != nil {
			return fmt.Errorf("seed demo ads: %w", err)
		}
		logger.Info("demo ads seeded", slog.Int("count", len(seeded)))
	}

	svc := usecase.NewRewardUseCase(ledger, ads, logger)

	var limiter *httpadapter.RateLimiter
	if cfg.RateLimit.Enabled() {
		limiter = httpadapter.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := httpadapter.NewHandler(svc, logger, limiter)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if cfg.Telegram.Enabled() {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			return fmt.Errorf("telegram: %w", err)
		}
		bot.Debug = cfg.Telegram.Debug
		logger.Info("telegram bot authorized", slog.String("account", bot.Self.UserName))

		u := tgbotapi.NewUpdate(0)
		u.Timeout = cfg.Telegram.PollTimeout
		updates := bot.GetUpdatesChan(u)

		bh := telegram.NewBotHandler(bot, svc, logger, cfg.Telegram.DialogueTimeout)
		g.Go(func() error {
			return bh.Run(gctx, updates)
		})
		g.Go(func() error {
			<-gctx.Done()
			bot.StopReceivingUpdates()
			return nil
		})
	} else {
		logger.Info("telegram bot disabled, TELEGRAM_TOKEN is empty")
	}

	return g.Wait()
}
