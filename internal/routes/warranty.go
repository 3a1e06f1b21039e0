package routes

import (
	"catalog-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type WarrantyRoutes struct {
	handler *handlers.WarrantyHandler
}

func NewWarrantyRoutes(handler *handlers.WarrantyHandler) *WarrantyRoutes {
	return &WarrantyRoutes{handler: handler}
}

func (r *WarrantyRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/warranty", r.handler.CreateWarranty)

	warranty := router.Group("/warranty")
	{
		warranty.GET("/:id", r.handler.GetWarranty)
		warranty.PUT("/:id", r.handler.UpdateWarranty)
	}
}
