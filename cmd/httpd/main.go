package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/projectsentry/narrative-analyzer/internal/analysis"
	"github.com/projectsentry/narrative-analyzer/internal/api"
	"github.com/projectsentry/narrative-analyzer/internal/config"
	"github.com/projectsentry/narrative-analyzer/internal/domain"
	"github.com/projectsentry/narrative-analyzer/internal/logger"
	"github.com/projectsentry/narrative-analyzer/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting narrative analyzer",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug))

	tp := telemetry.NewProvider()

	analyzer := analysis.NewAnalyzer(log, tp, analysis.Config{
		TextFields:     cfg.Analysis.TextFields,
		TopDriverCount: cfg.Analysis.TopDriverCount,
	})

	limiter := api.NewRateLimiter(cfg.Service.RateLimitRPS, cfg.Service.RateLimitBurst, log)
	defaultTerms := domain.KeywordSet{
		Pro:  cfg.Analysis.ProTerms,
		Anti: cfg.Analysis.AntiTerms,
	}
	handler := api.NewHandler(analyzer, limiter, defaultTerms, log)

	server := api.NewServer(handler, tp, api.ServerConfig{
		Port:         cfg.Service.Port,
		ReadTimeout:  cfg.Service.ReadTimeout,
		WriteTimeout: cfg.Service.WriteTimeout,
		Debug:        cfg.Service.Debug,
	}, log)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Error("server error", logger.Error(err))
			os.Exit(1)
		}
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", logger.Error(err))
			os.Exit(1)
		}
		log.Info("shutdown complete")
	}
}
