package handler

import (
	"context"
	"net/http"

	"locator-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ResolveHandler handles address resolution requests
type ResolveHandler struct {
	service ResolveService
}

// Service interface for dependency injection
type ResolveService interface {
	Resolve(ctx context.Context, query, mode string) models.Address
	Accept(ctx context.Context, addr models.Address) models.Address
}

// NewResolveHandler creates a new resolve handler
func NewResolveHandler(svc ResolveService) *ResolveHandler {
	return &ResolveHandler{service: svc}
}

type resolveRequest struct {
	Address     string   `json:"address"`
	Mode        string   `json:"mode"`
	Street      string   `json:"street"`
	City        string   `json:"city"`
	Province    string   `json:"province"`
	ZipCode     string   `json:"zip_code"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Confidence  int      `json:"confidence"`
	AddressType string   `json:"address_type"`
}

// Resolve handles POST /resolve requests. A body carrying both coordinates
// is a caller-selected suggestion and skips resolution; it is validated and
// stored as submitted. Anything else goes through the resolution cascade.
func (h *ResolveHandler) Resolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Latitude != nil && req.Longitude != nil {
		addr := h.service.Accept(c.Request.Context(), models.Address{
			FullAddress: req.Address,
			Street:      req.Street,
			City:        req.City,
			Province:    req.Province,
			ZipCode:     req.ZipCode,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			Confidence:  req.Confidence,
			AddressType: req.AddressType,
		})
		c.JSON(http.StatusOK, addr)
		return
	}

	addr := h.service.Resolve(c.Request.Context(), req.Address, req.Mode)
	c.JSON(http.StatusOK, addr)
}
