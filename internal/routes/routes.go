package routes

import (
	"catalog-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Company  *handlers.CompanyHandler
	Category *handlers.CategoryHandler
	Product  *handlers.ProductHandler
	Warranty *handlers.WarrantyHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/")

	NewCompanyRoutes(h.Company).RegisterRoutes(api)
	NewCategoryRoutes(h.Category).RegisterRoutes(api)
	NewProductRoutes(h.Product).RegisterRoutes(api)
	NewWarrantyRoutes(h.Warranty).RegisterRoutes(api)

	router.GET("/", h.Health.Health)
}
