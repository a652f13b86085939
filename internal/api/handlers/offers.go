package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/catalog"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/domain"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/service"
	"github.com/Fhadshnde/Matjer-Dashborad/pkg/errors"
)

// CreateOfferRequest represents the offer creation payload
type CreateOfferRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	IsActive    bool    `json:"isActive"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	CategoryID  string  `json:"categoryId" binding:"required"`
	SectionID   string  `json:"sectionId" binding:"required"`
	ProductIDs  []int64 `json:"productIds"`
}

// AddOfferProductRequest represents the attach-product payload
type AddOfferProductRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

// HandleListOffers handles GET /v1/offers?tab=
func HandleListOffers(agg *service.Aggregator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tab := domain.Tab(c.DefaultQuery("tab", string(domain.TabAll)))
		if !tab.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tab"})
			return
		}

		offers := service.FilterOffers(agg.Store().Offers(), tab)
		c.JSON(http.StatusOK, gin.H{"offers": offers})
	}
}

// HandleGetOffer handles GET /v1/offers/:id
func HandleGetOffer(client *catalog.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		offer, err := client.GetOffer(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, offer)
	}
}

// HandleGetOfferProducts handles GET /v1/offers/:id/products
func HandleGetOfferProducts(client *catalog.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		products, err := client.GetOfferProducts(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// HandleCreateOffer handles POST /v1/offers
func HandleCreateOffer(offers *service.OfferService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOfferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		draft := service.OfferDraft{
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
			IsActive:    req.IsActive,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			CategoryID:  req.CategoryID,
			SectionID:   req.SectionID,
		}

		offer, err := offers.Create(c.Request.Context(), draft, req.ProductIDs)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, offer)
	}
}

// HandleToggleOffer handles PATCH /v1/offers/:id/toggle
func HandleToggleOffer(offers *service.OfferService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := offers.Toggle(c.Request.Context(), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "toggled"})
	}
}

// HandleDeactivateOffer handles PATCH /v1/offers/:id/deactivate
func HandleDeactivateOffer(offers *service.OfferService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := offers.Deactivate(c.Request.Context(), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
	}
}

// HandleDeleteOffer handles DELETE /v1/offers/:id
func HandleDeleteOffer(offers *service.OfferService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := offers.Delete(c.Request.Context(), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// HandleAddOfferProduct handles POST /v1/offers/:id/products
func HandleAddOfferProduct(offers *service.OfferService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var req AddOfferProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := offers.AddProduct(c.Request.Context(), id, req.ProductID); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "product added"})
	}
}

// HandleRemoveOfferProduct handles DELETE /v1/offers/:id/products/:productId
func HandleRemoveOfferProduct(offers *service.OfferService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		productID, ok := parseID(c, "productId")
		if !ok {
			return
		}

		if err := offers.RemoveProduct(c.Request.Context(), id, productID); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "product removed"})
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

// writeError maps the error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.Error()})
	case *errors.ErrNoSession:
		c.JSON(http.StatusUnauthorized, gin.H{"error": e.Error()})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrServer:
		c.JSON(http.StatusBadGateway, gin.H{"error": e.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
