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

type CategoryProvider interface {
	CreateCategory(ctx context.Context, req services.CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req services.UpdateCategoryRequest) (*models.Category, error)
}

type CategoryHandler struct {
	service CategoryProvider
	log     *zap.Logger
}

func NewCategoryHandler(service CategoryProvider, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// CreateCategory handles POST /category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "categories")
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		fail(c, h.log, err, "categories")
		return
	}

	responses.Message(c, http.StatusCreated, "Category "+category.Name+" added to DB")
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		fail(c, h.log, err, "categories")
		return
	}

	responses.Results(c, http.StatusOK, "categories found", categories)
}

// GetCategory handles GET /category/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "category")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err, "category")
		return
	}

	responses.Result(c, http.StatusOK, "category found", category)
}

// UpdateCategory handles PUT /category/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "category")
	if !ok {
		return
	}

	var req services.UpdateCategoryRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "category")
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		fail(c, h.log, err, "category")
		return
	}

	responses.Result(c, http.StatusOK, "category updated", category)
}
