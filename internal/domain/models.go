package domain

import "encoding/json"

// Product is owned by the catalog service and read-only here. Nested objects
// (category, section, supplier, price variants) are carried as raw JSON so a
// schema change on the server side never breaks the dashboard; only the id
// field is relied upon.
type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	OriginalPrice   float64         `json:"originalPrice"`
	Price           float64         `json:"price"`
	WholesalePrice  float64         `json:"wholesalePrice"`
	Stock           int             `json:"stock"`
	AverageRating   float64         `json:"averageRating"`
	MainImageURL    string          `json:"mainImageUrl"`
	CategoryID      int64           `json:"categoryId"`
	SectionID       int64           `json:"sectionId"`
	SupplierID      int64           `json:"supplierId"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
	Colors          json.RawMessage `json:"colors,omitempty"`
	Measurements    json.RawMessage `json:"measurements,omitempty"`
	Category        json.RawMessage `json:"category,omitempty"`
	Section         json.RawMessage `json:"section,omitempty"`
	Supplier        json.RawMessage `json:"supplier,omitempty"`
	DisplayPrice    json.RawMessage `json:"displayPrice,omitempty"`
	AvailablePrices json.RawMessage `json:"availablePrices,omitempty"`
}

// ProductSnapshot is a point-in-time copy of a Product embedded in an offer.
// Once embedded it never tracks later changes to the source product.
type ProductSnapshot Product

// SnapshotOf copies every field of a product into a snapshot.
func SnapshotOf(p Product) ProductSnapshot {
	return ProductSnapshot(p)
}

// Offer is a time-bounded promotional bundle with an embedded, denormalized
// product list. StartDate/EndDate are RFC 3339 instants as sent by the server.
type Offer struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Image       string            `json:"image,omitempty"`
	IsActive    bool              `json:"isActive"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	CategoryID  int64             `json:"categoryId"`
	SectionID   int64             `json:"sectionId"`
	Products    []ProductSnapshot `json:"products,omitempty"`
}

// Category groups products and may own nested sections.
type Category struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Image         string    `json:"image,omitempty"`
	ProductsCount int       `json:"productsCount"`
	SectionsCount int       `json:"sectionsCount,omitempty"`
	Sections      []Section `json:"sections,omitempty"`
}

// Section is a subdivision of a category.
type Section struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ProductsCount int    `json:"productsCount"`
}

// AppState is the local view composed from the four remote collections. Each
// slot is fetched independently and fails independently.
type AppState struct {
	Offers     []Offer    `json:"offers"`
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
	Sections   []Section  `json:"sections"`
}
