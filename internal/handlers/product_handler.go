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

type ProductProvider interface {
	CreateProduct(ctx context.Context, req services.CreateProductRequest) (*models.Product, error)
	AddProductCategory(ctx context.Context, req services.CreateProductCategoryRequest) (*models.ProductCategory, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByActive(ctx context.Context, active bool) ([]models.Product, error)
	ListProductsByCompany(ctx context.Context, companyID int64) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req services.UpdateProductRequest) (*models.Product, error)
}

type ProductHandler struct {
	service ProductProvider
	log     *zap.Logger
}

func NewProductHandler(service ProductProvider, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

type activeFilter struct {
	Active requests.Field `json:"active" form:"active"`
}

// CreateProduct handles POST /product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "products")
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		fail(c, h.log, err, "products")
		return
	}

	responses.Message(c, http.StatusCreated, "Product "+product.Name+" added to DB")
}

// AddProductCategory handles POST /product/category
func (h *ProductHandler) AddProductCategory(c *gin.Context) {
	var req services.CreateProductCategoryRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "product categories")
		return
	}

	if _, err := h.service.AddProductCategory(c.Request.Context(), req); err != nil {
		fail(c, h.log, err, "product categories")
		return
	}

	responses.Message(c, http.StatusCreated, "Product-Category association added to DB")
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	h.respondList(c, products, err)
}

// ListActiveProducts handles GET /products/active. The flag comes from the
// ?active= query parameter when present, otherwise from the request body.
func (h *ProductHandler) ListActiveProducts(c *gin.Context) {
	var filter activeFilter
	if v, ok := c.GetQuery("active"); ok {
		filter.Active = requests.Value(v)
	} else if err := requests.Decode(c, &filter); err != nil {
		fail(c, h.log, err, "products")
		return
	}

	products, err := h.service.ListProductsByActive(c.Request.Context(), filter.Active.Flag())
	h.respondList(c, products, err)
}

// ListCompanyProducts handles GET /product/company/:id
func (h *ProductHandler) ListCompanyProducts(c *gin.Context) {
	id, ok := pathID(c, "products")
	if !ok {
		return
	}

	products, err := h.service.ListProductsByCompany(c.Request.Context(), id)
	h.respondList(c, products, err)
}

func (h *ProductHandler) respondList(c *gin.Context, products []models.Product, err error) {
	if err != nil {
		fail(c, h.log, err, "products")
		return
	}
	responses.Results(c, http.StatusOK, "products found", products)
}

// GetProduct handles GET /product/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "product")
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err, "product")
		return
	}

	responses.Result(c, http.StatusOK, "product found", product)
}

// UpdateProduct handles PUT /product/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "product")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "product")
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		fail(c, h.log, err, "product")
		return
	}

	responses.Result(c, http.StatusOK, "product updated", product)
}
