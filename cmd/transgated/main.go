package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/transgate-dev/transgate/internal/api"
	"github.com/transgate-dev/transgate/internal/chunker"
	"github.com/transgate-dev/transgate/internal/config"
	"github.com/transgate-dev/transgate/internal/server"
	"github.com/transgate-dev/transgate/internal/tokenizer"
	"github.com/transgate-dev/transgate/internal/translator"
)

var (
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	configDir := flag.String("config-dir", ".", "Directory containing transgate.yaml")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("transgated %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	// Load config
	loader := config.NewLoader(*configDir)
	cfg, err := loader.LoadOrDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	level, _ := config.ParseLogLevel(cfg.Server.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	// Wire the translation pipeline
	counter := tokenizer.NewHTTPCounter(tokenizer.HTTPConfig{
		BaseURL: cfg.Model.BaseURL,
		Model:   cfg.Model.Name,
	})
	oracle := tokenizer.NewOracle(counter, logger)
	splitter := chunker.NewSplitter(oracle, cfg.Model.SafeBudget(), logger)
	nllb := translator.NewNLLBClient(translator.NLLBConfig{
		BaseURL: cfg.Model.BaseURL,
		Model:   cfg.Model.Name,
		Timeout: cfg.Model.Timeout(),
		Options: translator.DecodingOptions{
			MaxOutputTokens:   cfg.Model.MaxOutputTokens,
			NumBeams:          cfg.Model.NumBeams,
			LengthPenalty:     cfg.Model.LengthPenalty,
			NoRepeatNgramSize: cfg.Model.NoRepeatNgramSize,
			RepetitionPenalty: cfg.Model.RepetitionPenalty,
		},
	})
	service := translator.NewService(nllb, oracle, splitter, cfg.Limits.MaxTextLength, logger)

	router := api.NewRouter(service, cfg, logger)
	srv := server.New(cfg.Server.Address(), router, logger)

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	logger.Info("starting transgated",
		"version", version,
		"addr", cfg.Server.Address(),
		"model", cfg.Model.Name,
		"safe_budget", cfg.Model.SafeBudget())

	if err := srv.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("transgated stopped")
}
