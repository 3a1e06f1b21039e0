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

type WarrantyService struct {
	tx         *repositories.Transactor
	warranties *repositories.WarrantyRepository
	log        *zap.Logger
}

func NewWarrantyService(tx *repositories.Transactor, warranties *repositories.WarrantyRepository, log *zap.Logger) *WarrantyService {
	return &WarrantyService{
		tx:         tx,
		warranties: warranties,
		log:        log,
	}
}

type CreateWarrantyRequest struct {
	Months    requests.Field `json:"warranty_months" form:"warranty_months" binding:"required"`
	ProductID requests.Field `json:"product_id" form:"product_id" binding:"required"`
}

type UpdateWarrantyRequest struct {
	Months    requests.Field `json:"warranty_months" form:"warranty_months"`
	ProductID requests.Field `json:"product_id" form:"product_id"`
}

// CreateWarranty rejects a second warranty with the same months for the same
// product.
func (s *WarrantyService) CreateWarranty(ctx context.Context, req CreateWarrantyRequest) (*models.Warranty, error) {
	if err := requests.Validate(&req); err != nil {
		return nil, err
	}

	months, err := req.Months.Int64()
	if err != nil {
		return nil, apperrors.CouldNotAdd("Warranty", err)
	}
	productID, err := req.ProductID.Int64()
	if err != nil {
		return nil, apperrors.CouldNotAdd("Warranty", err)
	}

	var warranty *models.Warranty
	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.warranties.WithTx(tx)

		existing, err := repo.FindByTerms(ctx, months, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			return &apperrors.ConflictError{Entity: "Warranty"}
		}

		warranty, err = repo.Create(ctx, months, productID)
		return err
	})
	if err != nil {
		return nil, classify(err, couldNotAdd("Warranty"))
	}

	s.log.Info("warranty created", zap.Int64("warranty_id", warranty.ID), zap.Int64("product_id", productID))
	return warranty, nil
}

func (s *WarrantyService) GetWarranty(ctx context.Context, id int64) (*models.Warranty, error) {
	warranty, err := s.warranties.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get warranty %d: %w", id, err)
	}
	if warranty == nil {
		return nil, &apperrors.NotFoundError{Entity: "warranty"}
	}
	return warranty, nil
}

func (s *WarrantyService) UpdateWarranty(ctx context.Context, id int64, req UpdateWarrantyRequest) (*models.Warranty, error) {
	var warranty *models.Warranty
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.warranties.WithTx(tx)

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return &apperrors.NotFoundError{Entity: "warranty"}
		}

		changes, err := changesFrom(
			column{name: "warranty_months", value: req.Months, convert: asInt},
			column{name: "product_id", value: req.ProductID, convert: asInt},
		)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, id, changes); err != nil {
			return err
		}

		warranty, err = repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, classify(err, couldNotUpdate("Warranty"))
	}
	return warranty, nil
}
