package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/byte-squad-abac/manuscript/internal/api"
	"github.com/byte-squad-abac/manuscript/internal/config"
	"github.com/byte-squad-abac/manuscript/internal/dictstore"
	"github.com/byte-squad-abac/manuscript/internal/layout"
	"github.com/byte-squad-abac/manuscript/internal/pipeline"
	"github.com/byte-squad-abac/manuscript/internal/spellcheck"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dictionary source: hosted HTTP store, local sqlite file, or the
	// builtin word list when neither is configured.
	var source dictstore.Source
	var closeSource func() error
	switch {
	case cfg.DictionaryURL != "":
		source = dictstore.NewHTTPSource(cfg.DictionaryURL, cfg.DictionaryAPIKey)
		log.Info("dictionary source", "kind", "http", "url", cfg.DictionaryURL)
	case cfg.DictionaryPath != "":
		sq, err := dictstore.OpenSQLite(cfg.DictionaryPath)
		if err != nil {
			log.Error("open sqlite dictionary", "path", cfg.DictionaryPath, "error", err)
			os.Exit(1)
		}
		source = sq
		closeSource = sq.Close
		log.Info("dictionary source", "kind", "sqlite", "path", cfg.DictionaryPath)
	default:
		source = dictstore.Builtin()
		log.Info("dictionary source", "kind", "builtin")
	}

	engine := spellcheck.New(source, spellcheck.Options{
		DocumentZawgyiThreshold: cfg.ZawgyiDocThreshold,
		WordZawgyiThreshold:     cfg.ZawgyiWordThreshold,
		MaxEditDistance:         cfg.MaxEditDistance,
		MaxSuggestions:          cfg.MaxSuggestions,
	}, log)
	engine.Initialize(ctx)

	proc := pipeline.NewProcessor(engine, layout.New(log), log)
	orch := pipeline.NewOrchestrator(cfg, proc, engine.Degraded, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if closeSource != nil {
			closeSource()
		}
	}()

	log.Info("starting manuscript service", "port", cfg.Port, "degraded_dictionary", engine.Degraded())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
