package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearfit/backend/internal/domain"
	"github.com/gearfit/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommendations *usecase.RecommendationService
}

// NewHandler creates a new HTTP handler
func NewHandler(recommendations *usecase.RecommendationService) *Handler {
	return &Handler{recommendations: recommendations}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "gearfit-backend",
		"version": "1.0.0",
	})
}

// recommendRequest is the transport shape of a recommendation request.
// FormData is passed through to the engine untouched; all fields in it
// are optional.
type recommendRequest struct {
	Sport    string                 `json:"sport" binding:"required"`
	Category string                 `json:"category"`
	ShopID   string                 `json:"shopId"`
	FormData domain.CustomerProfile `json:"formData"`
}

// Recommend handles recommendation requests. An empty result list is a
// normal 200 response; the storefront renders its own empty state.
func (h *Handler) Recommend(c *gin.Context) {
	if h.recommendations == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Recommendation service not available",
		})
		return
	}

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	recommendations, token, err := h.recommendations.RecommendForRequest(c.Request.Context(), &usecase.RecommendRequest{
		Sport:    req.Sport,
		Category: req.Category,
		ShopID:   req.ShopID,
		Profile:  req.FormData,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recommendations,
		"count":           len(recommendations),
		"sessionToken":    token,
	})
}
