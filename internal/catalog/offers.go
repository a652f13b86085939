package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
)

// CreateOfferPayload is the denormalized creation body: the selected products
// are embedded as full snapshots, not referenced by id. StartDate/EndDate are
// RFC 3339 UTC instants.
type CreateOfferPayload struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Image       string                   `json:"image"`
	IsActive    bool                     `json:"isActive"`
	StartDate   string                   `json:"startDate"`
	EndDate     string                   `json:"endDate"`
	CategoryID  int64                    `json:"categoryId"`
	SectionID   int64                    `json:"sectionId"`
	Products    []domain.ProductSnapshot `json:"products"`
}

// addProductsRequest wraps a single snapshot in a one-element array, the shape
// the attach endpoint expects.
type addProductsRequest struct {
	Products []domain.ProductSnapshot `json:"products"`
}

// FetchOffers fetches the general offer collection.
func (c *Client) FetchOffers(ctx context.Context) ([]domain.Offer, error) {
	body, err := c.do(ctx, http.MethodGet, "/offers/general", nil)
	if err != nil {
		return nil, err
	}

	raw, err := unwrapCollection(body, "offers")
	if err != nil {
		return nil, err
	}

	var offers []domain.Offer
	if err := json.Unmarshal(raw, &offers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offers: %w", err)
	}
	return offers, nil
}

// GetOffer fetches a single offer by id.
func (c *Client) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/offers/general/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var offer domain.Offer
	if err := json.Unmarshal(body, &offer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offer: %w", err)
	}
	return &offer, nil
}

// GetOfferProducts fetches the snapshot list embedded in an offer.
func (c *Client) GetOfferProducts(ctx context.Context, id int64) ([]domain.ProductSnapshot, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/offers/general/%d/products", id), nil)
	if err != nil {
		return nil, err
	}

	raw, err := unwrapCollection(body, "products")
	if err != nil {
		return nil, err
	}

	var snapshots []domain.ProductSnapshot
	if err := json.Unmarshal(raw, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offer products: %w", err)
	}
	return snapshots, nil
}

// CreateOffer posts a creation payload and returns the created offer.
func (c *Client) CreateOffer(ctx context.Context, payload *CreateOfferPayload) (*domain.Offer, error) {
	body, err := c.do(ctx, http.MethodPost, "/offers/general", payload)
	if err != nil {
		return nil, err
	}

	var offer domain.Offer
	if err := json.Unmarshal(body, &offer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created offer: %w", err)
	}
	return &offer, nil
}

// AddOfferProduct attaches one product snapshot to an existing offer.
func (c *Client) AddOfferProduct(ctx context.Context, offerID int64, snapshot domain.ProductSnapshot) error {
	req := addProductsRequest{Products: []domain.ProductSnapshot{snapshot}}
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/offers/general/%d/products", offerID), req)
	return err
}

// ToggleOffer flips the offer's isActive flag server-side.
func (c *Client) ToggleOffer(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/offers/general/%d/toggle", id), nil)
	return err
}

// DeactivateOffer forces isActive=false server-side.
func (c *Client) DeactivateOffer(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/offers/general/%d/deactivate", id), nil)
	return err
}

// DeleteOffer permanently removes an offer.
func (c *Client) DeleteOffer(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/offers/general/%d", id), nil)
	return err
}

// RemoveOfferProduct detaches one snapshot from an offer by product id.
func (c *Client) RemoveOfferProduct(ctx context.Context, offerID, productID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/offers/general/%d/products/%d", offerID, productID), nil)
	return err
}
