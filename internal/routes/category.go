package routes

import (
	"catalog-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type CategoryRoutes struct {
	handler *handlers.CategoryHandler
}

func NewCategoryRoutes(handler *handlers.CategoryHandler) *CategoryRoutes {
	return &CategoryRoutes{handler: handler}
}

func (r *CategoryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/category", r.handler.CreateCategory)
	router.GET("/categories", r.handler.ListCategories)

	category := router.Group("/category")
	{
		category.GET("/:id", r.handler.GetCategory)
		category.PUT("/:id", r.handler.UpdateCategory)
	}
}
