package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/highlanderkev/investing-agents/internal/a2a"
	"github.com/highlanderkev/investing-agents/internal/adapters/ai"
	"github.com/highlanderkev/investing-agents/internal/adapters/config"
	noopTracker "github.com/highlanderkev/investing-agents/internal/adapters/errors/noop"
	sentryTracker "github.com/highlanderkev/investing-agents/internal/adapters/errors/sentry"
	"github.com/highlanderkev/investing-agents/internal/agent"
	"github.com/highlanderkev/investing-agents/internal/api"
	"github.com/highlanderkev/investing-agents/internal/api/health"
	"github.com/highlanderkev/investing-agents/internal/task"
	"github.com/highlanderkev/investing-agents/pkg/errors"
	"github.com/highlanderkev/investing-agents/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()
	log.Infow("starting investment strategy agent",
		"version", cfg.App.Version,
		"env", cfg.App.Env,
	)

	tracker := buildTracker(cfg, log)
	logger.SetErrorTracker(tracker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := ai.BuildProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("configuring AI provider: %v", err)
	}
	delegate := agent.NewDelegate(provider)
	if delegate.Configured() {
		log.Infof("AI responses enabled via %s", delegate.ProviderName())
	} else {
		log.Warn("no AI credential configured, serving template responses only")
	}

	store := task.NewStore()
	executor := agent.NewExecutor(store, delegate)

	card := a2a.Card(cfg.Server.URL(), cfg.App.Version)
	rpcHandler := api.NewHandler(executor, card)
	healthHandler := health.New(store, cfg.App.Name, cfg.App.Version, delegate.Configured())

	server := api.NewServer(api.ServerConfig{
		Addr:        cfg.Server.Addr(),
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
	}, rpcHandler, healthHandler, log)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Infof("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil {
			log.Errorf("server error: %v", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown error: %v", err)
	}
	if err := tracker.Flush(shutdownCtx); err != nil {
		log.Warnf("tracker flush error: %v", err)
	}

	log.Info("agent stopped")
}

func buildTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		return noopTracker.New()
	}

	tracker, err := sentryTracker.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("sentry init failed, error tracking disabled: %v", err)
		return noopTracker.New()
	}

	log.Info("error tracking enabled")
	return tracker
}
