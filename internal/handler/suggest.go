package handler

import (
	"context"
	"net/http"

	"locator-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SuggestHandler handles autocomplete suggestion requests
type SuggestHandler struct {
	service SuggestService
}

// Service interface for dependency injection
type SuggestService interface {
	Suggest(ctx context.Context, query string) []models.Suggestion
}

// NewSuggestHandler creates a new suggest handler
func NewSuggestHandler(svc SuggestService) *SuggestHandler {
	return &SuggestHandler{service: svc}
}

// Suggest handles GET /suggestions requests
func (h *SuggestHandler) Suggest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	suggestions := h.service.Suggest(c.Request.Context(), query)
	c.JSON(http.StatusOK, suggestions)
}
