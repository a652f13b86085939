package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/catalog"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
)

// Aggregator composes the four collection fetches into the store. A failed
// fetch empties only its own slot; the other three keep their last successful
// result. Refresh is idempotent and safe to call concurrently — overlapping
// refreshes race per slot and the later completion wins.
type Aggregator struct {
	client *catalog.Client
	store  *Store
	logger *zap.Logger
}

// NewAggregator creates a new aggregator
func NewAggregator(client *catalog.Client, store *Store, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		client: client,
		store:  store,
		logger: logger,
	}
}

// Store exposes the underlying state store.
func (a *Aggregator) Store() *Store {
	return a.store
}

// Refresh fetches all four collections concurrently and replaces each slot
// with fresh server data. It never returns an error: fetch failures are
// absorbed per slot.
func (a *Aggregator) Refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		a.refreshOffers(ctx)
	}()
	go func() {
		defer wg.Done()
		a.refreshProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		a.refreshCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		a.refreshSections(ctx)
	}()

	wg.Wait()
}

func (a *Aggregator) refreshOffers(ctx context.Context) {
	offers, err := a.client.FetchOffers(ctx)
	if err != nil {
		a.logger.Warn("failed to fetch offers", zap.Error(err))
		offers = []domain.Offer{}
	}
	a.store.SetOffers(offers)
}

func (a *Aggregator) refreshProducts(ctx context.Context) {
	products, err := a.client.FetchProducts(ctx)
	if err != nil {
		a.logger.Warn("failed to fetch products", zap.Error(err))
		products = []domain.Product{}
	}
	a.store.SetProducts(products)
}

func (a *Aggregator) refreshCategories(ctx context.Context) {
	categories, err := a.client.FetchCategories(ctx)
	if err != nil {
		a.logger.Warn("failed to fetch categories", zap.Error(err))
		categories = []domain.Category{}
	}
	a.store.SetCategories(categories)
}

func (a *Aggregator) refreshSections(ctx context.Context) {
	sections, err := a.client.FetchSections(ctx)
	if err != nil {
		a.logger.Warn("failed to fetch sections", zap.Error(err))
		sections = []domain.Section{}
	}
	a.store.SetSections(sections)
}
