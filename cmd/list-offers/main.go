package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/catalog"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/config"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/service"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/session"
)

func main() {
	tab := domain.TabAll
	if len(os.Args) > 1 {
		tab = domain.Tab(os.Args[1])
	}
	if !tab.IsValid() {
		fmt.Println("Usage: go run cmd/list-offers/main.go [all|active|inactive]")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	sess := session.New(cfg.Catalog.Token)
	client := catalog.NewClient(cfg.Catalog, sess, logger)

	offers, err := client.FetchOffers(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch offers: %v\n", err)
		os.Exit(1)
	}

	filtered := service.FilterOffers(offers, tab)
	fmt.Printf("%d offer(s) on tab %q\n\n", len(filtered), tab)
	for _, offer := range filtered {
		state := "inactive"
		if offer.IsActive {
			state = "active"
		}
		fmt.Printf("  #%d  %-30s  %s  %s → %s\n",
			offer.ID, offer.Title, state, offer.StartDate, offer.EndDate)
	}
}
