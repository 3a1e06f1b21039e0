package handlers

import (
	"context"
	"net/http"

	"catalog-api/internal/models"
	"catalog-api/internal/requests"
	"catalog-api/internal/responses"
	"catalog-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WarrantyProvider interface {
	CreateWarranty(ctx context.Context, req services.CreateWarrantyRequest) (*models.Warranty, error)
	GetWarranty(ctx context.Context, id int64) (*models.Warranty, error)
	UpdateWarranty(ctx context.Context, id int64, req services.UpdateWarrantyRequest) (*models.Warranty, error)
}

type WarrantyHandler struct {
	service WarrantyProvider
	log     *zap.Logger
}

func NewWarrantyHandler(service WarrantyProvider, log *zap.Logger) *WarrantyHandler {
	return &WarrantyHandler{
		service: service,
		log:     log,
	}
}

// CreateWarranty handles POST /warranty
func (h *WarrantyHandler) CreateWarranty(c *gin.Context) {
	var req services.CreateWarrantyRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "warranties")
		return
	}

	if _, err := h.service.CreateWarranty(c.Request.Context(), req); err != nil {
		fail(c, h.log, err, "warranties")
		return
	}

	responses.Message(c, http.StatusCreated, "Warranty added to DB")
}

// GetWarranty handles GET /warranty/:id
func (h *WarrantyHandler) GetWarranty(c *gin.Context) {
	id, ok := pathID(c, "warranty")
	if !ok {
		return
	}

	warranty, err := h.service.GetWarranty(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err, "warranty")
		return
	}

	responses.Result(c, http.StatusOK, "warranty found", warranty)
}

// UpdateWarranty handles PUT /warranty/:id
func (h *WarrantyHandler) UpdateWarranty(c *gin.Context) {
	id, ok := pathID(c, "warranty")
	if !ok {
		return
	}

	var req services.UpdateWarrantyRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "warranty")
		return
	}

	warranty, err := h.service.UpdateWarranty(c.Request.Context(), id, req)
	if err != nil {
		fail(c, h.log, err, "warranty")
		return
	}

	responses.Result(c, http.StatusOK, "warranty updated", warranty)
}
