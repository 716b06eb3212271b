package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"creatorscore/internal/adapter/repo"
	"creatorscore/internal/http/handlers"
	"creatorscore/internal/http/httpapi"
	"creatorscore/internal/infra"
	"creatorscore/internal/infra/geoip"
	"creatorscore/internal/middleware"
	"creatorscore/internal/providers/ai"
	"creatorscore/internal/scoring"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	var analyzer ai.Analyzer = ai.NewUnavailable()
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiAnalyzer(ai.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure analyzer")
		}
		analyzer = gemini
	} else {
		logger.Warn().Msg("no GEMINI_API_KEY set; AI metrics resolve to their fallbacks")
	}

	engine := scoring.NewEngine(
		repo.NewProfileRepository(dbpool),
		repo.NewSnapshotRepository(dbpool),
		repo.NewMediaRepository(dbpool),
		repo.NewGrowthRepository(dbpool),
		analyzer,
		scoring.Config{
			TargetCountry:    cfg.TargetCountry,
			TargetLanguages:  cfg.TargetLanguages,
			AITimeout:        cfg.AITimeout,
			MediaWindowDays:  cfg.MediaWindowDays,
			GrowthWindowDays: cfg.GrowthWindowDays,
			RecentMediaLimit: cfg.RecentMediaLimit,
		},
		infra.ComponentLogger(logger, "scoring"),
	)

	var lookup middleware.CountryLookup
	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	app := handlers.NewApp(engine, infra.ComponentLogger(logger, "http"))
	router := httpapi.NewRouter(app, httpapi.Options{
		RateLimitPerMin: cfg.RateLimitPerMin,
		CountryLookup:   lookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
