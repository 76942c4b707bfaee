package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/flyer"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/providers/artwork"
	"server/internal/providers/copy"
	"server/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	store, err := storage.NewFileStore(cfg.StorageDir, cfg.StorageBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	// Suppliers are optional: without a key every request runs on the local
	// copy generator and the classic render path.
	var copySupplier flyer.CopySupplier
	var artworkSupplier flyer.ArtworkSupplier
	if cfg.GeminiAPIKey != "" {
		cs, err := copy.NewGeminiSupplier(copy.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize copy supplier")
		}
		copySupplier = cs

		as, err := artwork.NewGeminiSupplier(artwork.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiImageModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize artwork supplier")
		}
		artworkSupplier = as
	}

	engine := flyer.NewEngine(flyer.Options{
		Logger:   logger,
		Copy:     copySupplier,
		Artwork:  artworkSupplier,
		Fonts:    &flyer.FontLoader{Dir: cfg.FontDir},
		AssetDir: cfg.AssetDir,
	})

	app := handlers.NewApp(logger, engine, store, copySupplier)
	router := httpapi.NewRouter(app, httpapi.Options{
		StaticDir:      cfg.StorageDir,
		AllowedOrigins: cfg.AllowedOrigins,
		GenerateLimit:  cfg.GenerateLimit,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
