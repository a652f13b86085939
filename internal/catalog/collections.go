package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
)

// The collection endpoints are inconsistent: some return a bare JSON array,
// others wrap the array in an object under a collection-named key, and the
// categories/sections endpoints have been observed wrapping their data under
// "products". unwrapCollection accepts all of these shapes.
func unwrapCollection(body []byte, keys ...string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection response: %w", err)
	}
	for _, key := range keys {
		if raw, ok := wrapper[key]; ok {
			inner := bytes.TrimSpace(raw)
			if len(inner) > 0 && inner[0] == '[' {
				return json.RawMessage(inner), nil
			}
		}
	}
	return nil, fmt.Errorf("collection response has none of the keys %v", keys)
}

// FetchProducts fetches the product collection.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	body, err := c.do(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}

	raw, err := unwrapCollection(body, "products")
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products: %w", err)
	}
	return products, nil
}

// FetchCategories fetches the category collection, including any nested
// sections the server embeds per category.
func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	body, err := c.do(ctx, http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, err
	}

	raw, err := unwrapCollection(body, "categories", "products")
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

// FetchSections fetches the section collection.
func (c *Client) FetchSections(ctx context.Context) ([]domain.Section, error) {
	body, err := c.do(ctx, http.MethodGet, "/sections", nil)
	if err != nil {
		return nil, err
	}

	raw, err := unwrapCollection(body, "sections", "products")
	if err != nil {
		return nil, err
	}

	var sections []domain.Section
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sections: %w", err)
	}
	return sections, nil
}
