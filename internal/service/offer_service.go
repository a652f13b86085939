package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/catalog"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/session"
	"github.com/Fhadshnde/Matjer-Dashborad/pkg/errors"
)

// OfferService sequences lifecycle mutations against the catalog service.
// Every operation is one remote call followed by a full refresh on success;
// on failure the state is left exactly as it was (no optimistic update, no
// retry, no refresh).
type OfferService struct {
	client  *catalog.Client
	agg     *Aggregator
	session *session.Session
	logger  *zap.Logger
}

// NewOfferService creates a new offer service
func NewOfferService(client *catalog.Client, agg *Aggregator, sess *session.Session, logger *zap.Logger) *OfferService {
	return &OfferService{
		client:  client,
		agg:     agg,
		session: sess,
		logger:  logger,
	}
}

// Create validates the draft, posts the denormalized payload and refreshes
// the state. When no product ids are given, every loaded product is embedded.
func (s *OfferService) Create(ctx context.Context, draft OfferDraft, productIDs []int64) (*domain.Offer, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}

	state := s.agg.Store().State()
	products, err := selectProducts(state.Products, productIDs)
	if err != nil {
		return nil, err
	}

	payload, err := BuildCreatePayload(draft, products, state.Categories, state.Sections)
	if err != nil {
		return nil, err
	}

	offer, err := s.client.CreateOffer(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create offer", zap.String("title", payload.Title), zap.Error(err))
		return nil, err
	}

	s.agg.Refresh(ctx)
	return offer, nil
}

// Toggle flips the offer's isActive flag server-side and refreshes.
func (s *OfferService) Toggle(ctx context.Context, id int64) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	if err := s.requireOffer(id); err != nil {
		return err
	}

	if err := s.client.ToggleOffer(ctx, id); err != nil {
		s.logger.Error("failed to toggle offer", zap.Int64("offer_id", id), zap.Error(err))
		return err
	}

	s.agg.Refresh(ctx)
	return nil
}

// Deactivate forces isActive=false server-side and refreshes.
func (s *OfferService) Deactivate(ctx context.Context, id int64) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	if err := s.requireOffer(id); err != nil {
		return err
	}

	if err := s.client.DeactivateOffer(ctx, id); err != nil {
		s.logger.Error("failed to deactivate offer", zap.Int64("offer_id", id), zap.Error(err))
		return err
	}

	s.agg.Refresh(ctx)
	return nil
}

// Delete permanently removes the offer and refreshes. Deletion is
// authoritative once the server acknowledges it; there is no soft-delete.
func (s *OfferService) Delete(ctx context.Context, id int64) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	if err := s.requireOffer(id); err != nil {
		return err
	}

	if err := s.client.DeleteOffer(ctx, id); err != nil {
		s.logger.Error("failed to delete offer", zap.Int64("offer_id", id), zap.Error(err))
		return err
	}

	s.agg.Refresh(ctx)
	return nil
}

// AddProduct snapshots one loaded product and attaches it to the offer.
func (s *OfferService) AddProduct(ctx context.Context, offerID, productID int64) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	if err := s.requireOffer(offerID); err != nil {
		return err
	}

	product, ok := findProduct(s.agg.Store().Products(), productID)
	if !ok {
		return &errors.ErrNotFound{Resource: "product", ID: strconv.FormatInt(productID, 10)}
	}

	if err := s.client.AddOfferProduct(ctx, offerID, domain.SnapshotOf(product)); err != nil {
		s.logger.Error("failed to add product to offer",
			zap.Int64("offer_id", offerID),
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
		return err
	}

	s.agg.Refresh(ctx)
	return nil
}

// RemoveProduct detaches one snapshot from the offer by product id.
func (s *OfferService) RemoveProduct(ctx context.Context, offerID, productID int64) error {
	if err := s.requireSession(); err != nil {
		return err
	}

	offer, ok := findOffer(s.agg.Store().Offers(), offerID)
	if !ok {
		return &errors.ErrNotFound{Resource: "offer", ID: strconv.FormatInt(offerID, 10)}
	}
	// The list endpoint does not always embed the snapshots; only enforce
	// membership when they are present.
	if len(offer.Products) > 0 && !snapshotPresent(offer.Products, productID) {
		return &errors.ErrNotFound{Resource: "product", ID: strconv.FormatInt(productID, 10)}
	}

	if err := s.client.RemoveOfferProduct(ctx, offerID, productID); err != nil {
		s.logger.Error("failed to remove product from offer",
			zap.Int64("offer_id", offerID),
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
		return err
	}

	s.agg.Refresh(ctx)
	return nil
}

// requireSession blocks a mutation before any request is sent when no bearer
// token is present.
func (s *OfferService) requireSession() error {
	if !s.session.HasToken() {
		return &errors.ErrNoSession{}
	}
	return nil
}

func (s *OfferService) requireOffer(id int64) error {
	if _, ok := findOffer(s.agg.Store().Offers(), id); !ok {
		return &errors.ErrNotFound{Resource: "offer", ID: strconv.FormatInt(id, 10)}
	}
	return nil
}

func findOffer(offers []domain.Offer, id int64) (domain.Offer, bool) {
	for _, o := range offers {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Offer{}, false
}

func findProduct(products []domain.Product, id int64) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func snapshotPresent(snapshots []domain.ProductSnapshot, productID int64) bool {
	for _, s := range snapshots {
		if s.ID == productID {
			return true
		}
	}
	return false
}

func selectProducts(loaded []domain.Product, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return loaded, nil
	}

	selected := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		product, ok := findProduct(loaded, id)
		if !ok {
			return nil, &errors.ErrNotFound{Resource: "product", ID: strconv.FormatInt(id, 10)}
		}
		selected = append(selected, product)
	}
	return selected, nil
}
