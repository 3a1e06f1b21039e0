package routes

import (
	"catalog-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type CompanyRoutes struct {
	handler *handlers.CompanyHandler
}

func NewCompanyRoutes(handler *handlers.CompanyHandler) *CompanyRoutes {
	return &CompanyRoutes{handler: handler}
}

func (r *CompanyRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/company", r.handler.CreateCompany)
	router.GET("/companies", r.handler.ListCompanies)

	company := router.Group("/company")
	{
		company.GET("/:id", r.handler.GetCompany)
		company.PUT("/:id", r.handler.UpdateCompany)
	}
}
