package services

import (
	"context"
	"fmt"

	"catalog-api/internal/apperrors"
	"catalog-api/internal/models"
	"catalog-api/internal/repositories"
	"catalog-api/internal/requests"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CompanyService struct {
	tx        *repositories.Transactor
	companies *repositories.CompanyRepository
	log       *zap.Logger
}

func NewCompanyService(tx *repositories.Transactor, companies *repositories.CompanyRepository, log *zap.Logger) *CompanyService {
	return &CompanyService{
		tx:        tx,
		companies: companies,
		log:       log,
	}
}

type CreateCompanyRequest struct {
	Name requests.Field `json:"company_name" form:"company_name" binding:"required"`
}

type UpdateCompanyRequest struct {
	Name   requests.Field `json:"company_name" form:"company_name"`
	Active requests.Field `json:"active" form:"active"`
}

func (s *CompanyService) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*models.Company, error) {
	if err := requests.Validate(&req); err != nil {
		return nil, err
	}
	name := req.Name.String()

	var company *models.Company
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.companies.WithTx(tx)

		existing, err := repo.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return &apperrors.ConflictError{Entity: "Company"}
		}

		company, err = repo.Create(ctx, name)
		return err
	})
	if err != nil {
		return nil, classify(err, couldNotAdd("Company"))
	}

	s.log.Info("company created", zap.Int64("company_id", company.ID), zap.String("company_name", company.Name))
	return company, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	if len(companies) == 0 {
		return nil, &apperrors.NotFoundError{Entity: "companies"}
	}
	return companies, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %d: %w", id, err)
	}
	if company == nil {
		return nil, &apperrors.NotFoundError{Entity: "company"}
	}
	return company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, req UpdateCompanyRequest) (*models.Company, error) {
	var company *models.Company
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.companies.WithTx(tx)

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return &apperrors.NotFoundError{Entity: "company"}
		}

		changes, err := changesFrom(
			column{name: "company_name", value: req.Name, convert: asText},
			column{name: "active", value: req.Active, convert: asBool},
		)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, id, changes); err != nil {
			return err
		}

		company, err = repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, classify(err, couldNotUpdate("Company"))
	}
	return company, nil
}
