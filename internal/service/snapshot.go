package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/catalog"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
	"github.com/Fhadshnde/Matjer-Dashborad/pkg/errors"
)

// OfferDraft carries the raw offer fields as entered, before validation and
// normalization. Category/section ids arrive as strings (selection values).
type OfferDraft struct {
	Title       string
	Description string
	Image       string
	IsActive    bool
	StartDate   string
	EndDate     string
	CategoryID  string
	SectionID   string
}

// BuildCreatePayload validates a draft against the currently loaded
// collections and produces the denormalized creation payload: free-text
// fields trimmed, dates normalized to RFC 3339 UTC, ids coerced to numbers
// and every selected product copied in full as a snapshot. No network I/O
// happens here.
func BuildCreatePayload(
	draft OfferDraft,
	products []domain.Product,
	categories []domain.Category,
	sections []domain.Section,
) (*catalog.CreateOfferPayload, error) {
	categoryID, err := parseSelection("categoryId", draft.CategoryID)
	if err != nil {
		return nil, err
	}
	sectionID, err := parseSelection("sectionId", draft.SectionID)
	if err != nil {
		return nil, err
	}

	if !categoryExists(categories, categoryID) {
		return nil, &errors.ErrValidation{Field: "categoryId", Reason: "not in the loaded categories"}
	}
	if !sectionExists(sections, sectionID) {
		return nil, &errors.ErrValidation{Field: "sectionId", Reason: "not in the loaded sections"}
	}

	if len(products) == 0 {
		return nil, &errors.ErrValidation{Field: "products", Reason: "no products to attach"}
	}

	startDate, err := normalizeDate("startDate", draft.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := normalizeDate("endDate", draft.EndDate)
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.ProductSnapshot, len(products))
	for i, p := range products {
		snapshots[i] = domain.SnapshotOf(p)
	}

	return &catalog.CreateOfferPayload{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Image:       strings.TrimSpace(draft.Image),
		IsActive:    draft.IsActive,
		StartDate:   startDate,
		EndDate:     endDate,
		CategoryID:  categoryID,
		SectionID:   sectionID,
		Products:    snapshots,
	}, nil
}

func parseSelection(field, value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &errors.ErrValidation{Field: field, Reason: "must be selected"}
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &errors.ErrValidation{Field: field, Reason: "must be a numeric id"}
	}
	return id, nil
}

func categoryExists(categories []domain.Category, id int64) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func sectionExists(sections []domain.Section, id int64) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// normalizeDate accepts a plain date or a full RFC 3339 instant and returns
// the canonical RFC 3339 UTC form. Dates are never forwarded date-only.
func normalizeDate(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &errors.ErrValidation{Field: field, Reason: "is required"}
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	return "", &errors.ErrValidation{Field: field, Reason: "is not a valid date"}
}
