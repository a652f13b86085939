package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
	"github.com/Fhadshnde/Matjer-Dashborad/pkg/errors"
)

func validDraft() OfferDraft {
	return OfferDraft{
		Title:       "  Winter Sale  ",
		Description: " Everything half price ",
		Image:       " https://cdn.example/banner.png ",
		IsActive:    true,
		StartDate:   "2026-01-01",
		EndDate:     "2026-02-01",
		CategoryID:  "1",
		SectionID:   "2",
	}
}

func builderFixtures() ([]domain.Product, []domain.Category, []domain.Section) {
	products := []domain.Product{
		{
			ID: 7, Name: "Mug", Description: "ceramic", OriginalPrice: 6, Price: 4.5,
			WholesalePrice: 3, Stock: 3, AverageRating: 4.8,
			MainImageURL: "https://cdn.example/mug.png",
			CategoryID: 1, SectionID: 2, SupplierID: 11,
			CreatedAt: "2025-12-01T10:00:00Z", UpdatedAt: "2025-12-02T10:00:00Z",
			Colors:          json.RawMessage(`[{"id":1,"name":"red"}]`),
			Measurements:    json.RawMessage(`[{"id":2,"size":"L"}]`),
			Category:        json.RawMessage(`{"id":1,"name":"Kitchen"}`),
			Section:         json.RawMessage(`{"id":2,"name":"Cups"}`),
			Supplier:        json.RawMessage(`{"id":11,"name":"Acme"}`),
			DisplayPrice:    json.RawMessage(`"4.50"`),
			AvailablePrices: json.RawMessage(`[4.5,3]`),
		},
	}
	categories := []domain.Category{{ID: 1, Name: "Kitchen"}}
	sections := []domain.Section{{ID: 2, Name: "Cups"}}
	return products, categories, sections
}

func TestBuildCreatePayload_Valid(t *testing.T) {
	products, categories, sections := builderFixtures()

	payload, err := BuildCreatePayload(validDraft(), products, categories, sections)
	require.NoError(t, err)

	assert.Equal(t, "Winter Sale", payload.Title)
	assert.Equal(t, "Everything half price", payload.Description)
	assert.Equal(t, "https://cdn.example/banner.png", payload.Image)
	assert.True(t, payload.IsActive)
	assert.Equal(t, int64(1), payload.CategoryID)
	assert.Equal(t, int64(2), payload.SectionID)
	assert.Equal(t, "2026-01-01T00:00:00Z", payload.StartDate)
	assert.Equal(t, "2026-02-01T00:00:00Z", payload.EndDate)
}

// Every product field must survive the snapshot copy verbatim.
func TestBuildCreatePayload_SnapshotRoundTrip(t *testing.T) {
	products, categories, sections := builderFixtures()

	payload, err := BuildCreatePayload(validDraft(), products, categories, sections)
	require.NoError(t, err)
	require.Len(t, payload.Products, 1)

	assert.Equal(t, domain.SnapshotOf(products[0]), payload.Products[0])
	assert.Equal(t, domain.Product(payload.Products[0]), products[0])
}

func TestBuildCreatePayload_AcceptsRFC3339Dates(t *testing.T) {
	products, categories, sections := builderFixtures()
	draft := validDraft()
	draft.StartDate = "2026-01-01T09:30:00+03:00"

	payload, err := BuildCreatePayload(draft, products, categories, sections)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T06:30:00Z", payload.StartDate)
}

func TestBuildCreatePayload_Rejections(t *testing.T) {
	products, categories, sections := builderFixtures()

	tests := []struct {
		name   string
		mutate func(*OfferDraft)
		field  string
	}{
		{"missing category", func(d *OfferDraft) { d.CategoryID = "" }, "categoryId"},
		{"missing section", func(d *OfferDraft) { d.SectionID = "" }, "sectionId"},
		{"non-numeric category", func(d *OfferDraft) { d.CategoryID = "kitchen" }, "categoryId"},
		{"unknown category", func(d *OfferDraft) { d.CategoryID = "99" }, "categoryId"},
		{"unknown section", func(d *OfferDraft) { d.SectionID = "99" }, "sectionId"},
		{"missing start date", func(d *OfferDraft) { d.StartDate = "" }, "startDate"},
		{"unparseable end date", func(d *OfferDraft) { d.EndDate = "tomorrow" }, "endDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			_, err := BuildCreatePayload(draft, products, categories, sections)
			require.Error(t, err)

			validationErr, ok := err.(*errors.ErrValidation)
			require.True(t, ok, "expected *ErrValidation, got %T", err)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestBuildCreatePayload_EmptyProducts(t *testing.T) {
	_, categories, sections := builderFixtures()

	_, err := BuildCreatePayload(validDraft(), nil, categories, sections)
	require.Error(t, err)

	validationErr, ok := err.(*errors.ErrValidation)
	require.True(t, ok)
	assert.Equal(t, "products", validationErr.Field)
}
