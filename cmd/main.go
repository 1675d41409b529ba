package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/nihongo.git/internal/cli"
	"github.com/DanRulev/nihongo.git/internal/client"
	"github.com/DanRulev/nihongo.git/internal/config"
	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/DanRulev/nihongo.git/internal/repository"
	"github.com/DanRulev/nihongo.git/internal/scheduler"
	"github.com/DanRulev/nihongo.git/internal/service"
	"github.com/DanRulev/nihongo.git/internal/storage/db"
	"github.com/DanRulev/nihongo.git/internal/storage/deck"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func setupLogger(env, level string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func buildApp(ctx context.Context, cfg *config.Config) (*cli.App, error) {
	logger, err := setupLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed init logger: %w", err)
	}

	closers := []func() error{
		func() error {
			_ = logger.Sync()
			return nil
		},
	}
	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	var backend deck.BackendI
	switch cfg.Store.Backend {
	case "file":
		backend = repository.NewFileRepository(cfg.Store.Path)
	default:
		conn, err := db.InitDB(cfg.Store)
		if err != nil {
			logger.Error("failed init db", zap.String("backend", cfg.Store.Backend), zap.Error(err))
			_ = closeAll()
			return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
		}
		closers = append(closers, conn.Close)
		backend = repository.NewWordsRepository(repository.NewDB(conn), conn.DriverName())
	}

	sched, err := scheduler.New(scheduler.Config{
		Strategy: models.Strategy(cfg.Scheduler.Strategy),
		MaxBox:   cfg.Scheduler.MaxBox,
		RandSeed: cfg.Scheduler.RandSeed,
	})
	if err != nil {
		_ = closeAll()
		return nil, err
	}

	cards := deck.New(backend, sched, cfg.Scheduler.MaxBox, logger)
	if err := cards.Load(ctx); err != nil {
		logger.Error("failed load cards", zap.Error(err))
		_ = closeAll()
		return nil, err
	}

	var translator service.TranslatorI
	if cfg.Translator.Enabled {
		translator = client.NewMyMemoryAPI(cfg.Translator.BaseURL, cfg.Translator.Timeout)
	}

	services := service.InitServices(cards, sched, translator, service.Options{
		Source: cfg.Translator.Source,
		Target: cfg.Translator.Target,
	}, logger)

	return &cli.App{
		Words:    services.WordS,
		Quiz:     services.QuizS,
		Strategy: sched.Strategy(),
		Log:      logger,
		Close:    closeAll,
	}, nil
}

// exitCode is 0 for conditions already reported to the user.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInsufficientData):
		return 0
	default:
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx, buildApp, os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:"), err)
	}

	code := exitCode(err)
	stop()
	os.Exit(code)
}
