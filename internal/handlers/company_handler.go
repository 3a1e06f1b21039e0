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

type CompanyProvider interface {
	CreateCompany(ctx context.Context, req services.CreateCompanyRequest) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id int64) (*models.Company, error)
	UpdateCompany(ctx context.Context, id int64, req services.UpdateCompanyRequest) (*models.Company, error)
}

type CompanyHandler struct {
	service CompanyProvider
	log     *zap.Logger
}

func NewCompanyHandler(service CompanyProvider, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		log:     log,
	}
}

// CreateCompany handles POST /company
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req services.CreateCompanyRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "companies")
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), req)
	if err != nil {
		fail(c, h.log, err, "companies")
		return
	}

	responses.Message(c, http.StatusCreated, "Company "+company.Name+" added to DB")
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		fail(c, h.log, err, "companies")
		return
	}

	responses.Results(c, http.StatusOK, "companies found", companies)
}

// GetCompany handles GET /company/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := pathID(c, "company")
	if !ok {
		return
	}

	company, err := h.service.GetCompany(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err, "company")
		return
	}

	responses.Result(c, http.StatusOK, "company found", company)
}

// UpdateCompany handles PUT /company/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := pathID(c, "company")
	if !ok {
		return
	}

	var req services.UpdateCompanyRequest
	if err := requests.Decode(c, &req); err != nil {
		fail(c, h.log, err, "company")
		return
	}

	company, err := h.service.UpdateCompany(c.Request.Context(), id, req)
	if err != nil {
		fail(c, h.log, err, "company")
		return
	}

	responses.Result(c, http.StatusOK, "company updated", company)
}
