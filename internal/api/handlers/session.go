package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/service"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/session"
)

// SetSessionRequest represents the sign-in payload
type SetSessionRequest struct {
	Token string `json:"token" binding:"required"`
}

// HandleSetSession handles POST /v1/session. Storing a fresh token also
// triggers a refresh so the offers slot is populated with the new credential.
func HandleSetSession(sess *session.Session, agg *service.Aggregator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sess.SetToken(req.Token)
		agg.Refresh(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"status": "session set"})
	}
}

// HandleClearSession handles DELETE /v1/session (logout).
func HandleClearSession(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess.Clear()
		logger.Info("session cleared")
		c.JSON(http.StatusOK, gin.H{"status": "session cleared"})
	}
}

// HandleRefresh handles POST /v1/refresh — a manual full refetch.
func HandleRefresh(agg *service.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		agg.Refresh(c.Request.Context())
		c.JSON(http.StatusOK, agg.Store().State())
	}
}
