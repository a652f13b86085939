package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/service"
)

// HandleListProducts handles GET /v1/products
func HandleListProducts(agg *service.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"products": agg.Store().Products()})
	}
}

// HandleListCategories handles GET /v1/categories
func HandleListCategories(agg *service.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": agg.Store().Categories()})
	}
}

// HandleListSections handles GET /v1/sections
func HandleListSections(agg *service.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sections": agg.Store().Sections()})
	}
}
