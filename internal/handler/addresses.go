package handler

import (
	"context"
	"net/http"
	"strconv"

	"locator-api/internal/models"

	"github.com/gin-gonic/gin"
)

// AddressesHandler handles stored address listing requests
type AddressesHandler struct {
	service AddressLister
}

// Service interface for dependency injection
type AddressLister interface {
	Recent(ctx context.Context, limit int) ([]models.AddressRecord, error)
}

// NewAddressesHandler creates a new addresses handler
func NewAddressesHandler(svc AddressLister) *AddressesHandler {
	return &AddressesHandler{service: svc}
}

// List handles GET /addresses requests
func (h *AddressesHandler) List(c *gin.Context) {
	var limit int
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		limit = parsed
	}

	records, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}
