package routes

import (
	"catalog-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ProductRoutes struct {
	handler *handlers.ProductHandler
}

func NewProductRoutes(handler *handlers.ProductHandler) *ProductRoutes {
	return &ProductRoutes{handler: handler}
}

func (r *ProductRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/product", r.handler.CreateProduct)

	products := router.Group("/products")
	{
		products.GET("", r.handler.ListProducts)
		products.GET("/active", r.handler.ListActiveProducts)
	}

	// Static segments take precedence over :id.
	product := router.Group("/product")
	{
		product.POST("/category", r.handler.AddProductCategory)
		product.GET("/company/:id", r.handler.ListCompanyProducts)
		product.GET("/:id", r.handler.GetProduct)
		product.PUT("/:id", r.handler.UpdateProduct)
	}
}
