package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/api"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/catalog"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/config"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/service"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Session lives for the whole process; logout clears it
	sess := session.New(cfg.Catalog.Token)

	client := catalog.NewClient(cfg.Catalog, sess, logger)
	store := service.NewStore()
	agg := service.NewAggregator(client, store, logger)
	offers := service.NewOfferService(client, agg, sess, logger)

	// Populate the initial view
	agg.Refresh(context.Background())

	router := api.NewRouter(cfg, client, agg, offers, sess, logger)

	logger.Info("starting dashboard server",
		zap.String("port", cfg.Port),
		zap.String("catalog_base_url", cfg.Catalog.BaseURL),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
