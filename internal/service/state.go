package service

import (
	"sync"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
)

// Store holds the in-memory AppState. Each collection slot is written
// independently so a refresh of one collection never disturbs the others.
type Store struct {
	mu    sync.RWMutex
	state domain.AppState
}

// NewStore creates a store with all four collections empty.
func NewStore() *Store {
	return &Store{
		state: domain.AppState{
			Offers:     []domain.Offer{},
			Products:   []domain.Product{},
			Categories: []domain.Category{},
			Sections:   []domain.Section{},
		},
	}
}

// State returns a copy of the current state. The slice headers are copied;
// callers must treat the elements as read-only.
func (s *Store) State() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Offers returns the offer slot.
func (s *Store) Offers() []domain.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Offers
}

// Products returns the product slot.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Products
}

// Categories returns the category slot.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Categories
}

// Sections returns the section slot.
func (s *Store) Sections() []domain.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Sections
}

// SetOffers replaces the offer slot.
func (s *Store) SetOffers(offers []domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Offers = offers
}

// SetProducts replaces the product slot.
func (s *Store) SetProducts(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Products = products
}

// SetCategories replaces the category slot.
func (s *Store) SetCategories(categories []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Categories = categories
}

// SetSections replaces the section slot.
func (s *Store) SetSections(sections []domain.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sections = sections
}
