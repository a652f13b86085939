package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/catalog"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/config"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/session"
)

// fakeCatalog is an in-memory stand-in for the remote catalog service. It
// answers the same endpoints with the same inconsistent response shapes
// (offers bare, products/categories wrapped) and mutates its own collections
// so refresh-after-mutation observes server truth.
type fakeCatalog struct {
	mu       sync.Mutex
	srv      *httptest.Server
	nextID   int64
	offers   []domain.Offer
	products []domain.Product

	categories []domain.Category
	sections   []domain.Section

	failOffers     bool
	failProducts   bool
	failCategories bool
	failSections   bool
	failAddProduct bool
	rejectCreate   string

	requests []string
}

func newFakeCatalog() *fakeCatalog {
	f := &fakeCatalog{nextID: 100}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeCatalog) Close() { f.srv.Close() }

func (f *fakeCatalog) resetRequests() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
}

func (f *fakeCatalog) countRequests(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeCatalog) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/products":
		if f.failProducts {
			writeFailure(w)
			return
		}
		writeJSON(w, map[string]interface{}{"products": f.products})

	case r.Method == http.MethodGet && r.URL.Path == "/categories":
		if f.failCategories {
			writeFailure(w)
			return
		}
		writeJSON(w, map[string]interface{}{"categories": f.categories})

	case r.Method == http.MethodGet && r.URL.Path == "/sections":
		if f.failSections {
			writeFailure(w)
			return
		}
		writeJSON(w, f.sections)

	case r.Method == http.MethodGet && r.URL.Path == "/offers/general":
		if f.failOffers {
			writeFailure(w)
			return
		}
		writeJSON(w, f.offers)

	case r.Method == http.MethodPost && r.URL.Path == "/offers/general":
		if f.rejectCreate != "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"` + f.rejectCreate + `"}`))
			return
		}
		var payload catalog.CreateOfferPayload
		json.NewDecoder(r.Body).Decode(&payload)
		f.nextID++
		offer := domain.Offer{
			ID:          f.nextID,
			Title:       payload.Title,
			Description: payload.Description,
			Image:       payload.Image,
			IsActive:    payload.IsActive,
			StartDate:   payload.StartDate,
			EndDate:     payload.EndDate,
			CategoryID:  payload.CategoryID,
			SectionID:   payload.SectionID,
			Products:    payload.Products,
		}
		f.offers = append(f.offers, offer)
		writeJSON(w, offer)

	case r.Method == http.MethodPatch && len(parts) == 4 && parts[3] == "toggle":
		id, _ := strconv.ParseInt(parts[2], 10, 64)
		for i := range f.offers {
			if f.offers[i].ID == id {
				f.offers[i].IsActive = !f.offers[i].IsActive
			}
		}
		writeJSON(w, map[string]string{"status": "ok"})

	case r.Method == http.MethodPatch && len(parts) == 4 && parts[3] == "deactivate":
		id, _ := strconv.ParseInt(parts[2], 10, 64)
		for i := range f.offers {
			if f.offers[i].ID == id {
				f.offers[i].IsActive = false
			}
		}
		writeJSON(w, map[string]string{"status": "ok"})

	case r.Method == http.MethodDelete && len(parts) == 3 && parts[0] == "offers":
		id, _ := strconv.ParseInt(parts[2], 10, 64)
		kept := f.offers[:0]
		for _, o := range f.offers {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		f.offers = kept
		writeJSON(w, map[string]string{"status": "ok"})

	case r.Method == http.MethodPost && len(parts) == 4 && parts[3] == "products":
		if f.failAddProduct {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"product already attached"}`))
			return
		}
		id, _ := strconv.ParseInt(parts[2], 10, 64)
		var req struct {
			Products []domain.ProductSnapshot `json:"products"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		for i := range f.offers {
			if f.offers[i].ID == id {
				f.offers[i].Products = append(f.offers[i].Products, req.Products...)
			}
		}
		writeJSON(w, map[string]string{"status": "ok"})

	case r.Method == http.MethodDelete && len(parts) == 5 && parts[3] == "products":
		id, _ := strconv.ParseInt(parts[2], 10, 64)
		productID, _ := strconv.ParseInt(parts[4], 10, 64)
		for i := range f.offers {
			if f.offers[i].ID != id {
				continue
			}
			kept := f.offers[i].Products[:0]
			for _, p := range f.offers[i].Products {
				if p.ID != productID {
					kept = append(kept, p)
				}
			}
			f.offers[i].Products = kept
		}
		writeJSON(w, map[string]string{"status": "ok"})

	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`{"message":"internal error"}`))
}

// newTestStack wires a client, store, aggregator and offer service against
// the fake catalog.
func newTestStack(t *testing.T, f *fakeCatalog, token string) (*Aggregator, *OfferService) {
	t.Helper()
	sess := session.New(token)
	client := catalog.NewClient(config.CatalogConfig{BaseURL: f.srv.URL}, sess, zap.NewNop())
	store := NewStore()
	agg := NewAggregator(client, store, zap.NewNop())
	offers := NewOfferService(client, agg, sess, zap.NewNop())
	return agg, offers
}

func seedCollections(f *fakeCatalog) {
	f.products = []domain.Product{
		{ID: 7, Name: "Mug", Description: "ceramic", Price: 4.5, OriginalPrice: 6,
			Stock: 3, CategoryID: 1, SectionID: 2, SupplierID: 11,
			MainImageURL: "https://cdn.example/mug.png",
			Colors:       json.RawMessage(`[{"id":1,"name":"red"}]`),
			Supplier:     json.RawMessage(`{"id":11,"name":"Acme"}`),
		},
		{ID: 8, Name: "Plate", Price: 7, Stock: 10, CategoryID: 1, SectionID: 2},
	}
	f.categories = []domain.Category{
		{ID: 1, Name: "Kitchen", ProductsCount: 2, Sections: []domain.Section{{ID: 2, Name: "Cups"}}},
	}
	f.sections = []domain.Section{
		{ID: 2, Name: "Cups", ProductsCount: 2},
	}
}
