package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/service"
)

func listOffersRouter(offers []domain.Offer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := service.NewStore()
	store.SetOffers(offers)
	agg := service.NewAggregator(nil, store, zap.NewNop())

	router := gin.New()
	router.GET("/v1/offers", HandleListOffers(agg, zap.NewNop()))
	return router
}

func TestHandleListOffers_TabFilter(t *testing.T) {
	router := listOffersRouter([]domain.Offer{
		{ID: 1, IsActive: true},
		{ID: 2, IsActive: false},
		{ID: 3, IsActive: true},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/offers?tab=active", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Offers []domain.Offer `json:"offers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Offers, 2)
	assert.Equal(t, int64(1), body.Offers[0].ID)
	assert.Equal(t, int64(3), body.Offers[1].ID)
}

func TestHandleListOffers_DefaultsToAll(t *testing.T) {
	router := listOffersRouter([]domain.Offer{{ID: 1}, {ID: 2, IsActive: true}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/offers", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Offers []domain.Offer `json:"offers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Offers, 2)
}

func TestHandleListOffers_InvalidTab(t *testing.T) {
	router := listOffersRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/offers?tab=archived", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
