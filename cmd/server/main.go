package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadscan/internal/config"
	"leadscan/internal/handler"
	"leadscan/internal/middleware"
	"leadscan/internal/ocr/tesseract"
	"leadscan/internal/repository"
	"leadscan/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// --- Logging ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// --- Database ---
	db, err := repository.NewPostgresDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to PostgreSQL")

	if err := repository.Migrate(ctx, db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Repositories ---
	leadRepo := repository.NewLeadRepository(db)

	// --- Services ---
	leadService := service.NewLeadService(leadRepo)
	pdfService := service.NewPDFService()
	fieldExtractor := service.NewFieldExtractor()
	engine := tesseract.New(cfg.OCR.Languages...)
	extractService := service.NewExtractService(pdfService, fieldExtractor, engine, leadRepo, logger)

	// --- Handlers ---
	leadHandler := handler.NewLeadHandler(leadService)
	extractHandler := handler.NewExtractHandler(extractService, cfg.Upload.MaxSizeBytes)

	// --- Router ---
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	leadHandler.RegisterRoutes(mux)
	extractHandler.RegisterRoutes(mux)

	// --- Server ---
	// OCR on a large document can take minutes, hence the generous
	// write timeout.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           middleware.CORS(middleware.AccessLog(logger, middleware.Recover(logger, mux))),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("server stopped")
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
