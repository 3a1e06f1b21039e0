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

type CategoryService struct {
	tx         *repositories.Transactor
	categories *repositories.CategoryRepository
	log        *zap.Logger
}

func NewCategoryService(tx *repositories.Transactor, categories *repositories.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{
		tx:         tx,
		categories: categories,
		log:        log,
	}
}

type CreateCategoryRequest struct {
	Name requests.Field `json:"category_name" form:"category_name" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name requests.Field `json:"category_name" form:"category_name"`
}

func (s *CategoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if err := requests.Validate(&req); err != nil {
		return nil, err
	}
	name := req.Name.String()

	var category *models.Category
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.categories.WithTx(tx)

		existing, err := repo.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return &apperrors.ConflictError{Entity: "Category"}
		}

		category, err = repo.Create(ctx, name)
		return err
	})
	if err != nil {
		return nil, classify(err, couldNotAdd("Category"))
	}

	s.log.Info("category created", zap.Int64("category_id", category.ID), zap.String("category_name", category.Name))
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, &apperrors.NotFoundError{Entity: "categories"}
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	if category == nil {
		return nil, &apperrors.NotFoundError{Entity: "category"}
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*models.Category, error) {
	var category *models.Category
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.categories.WithTx(tx)

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return &apperrors.NotFoundError{Entity: "category"}
		}

		changes, err := changesFrom(
			column{name: "category_name", value: req.Name, convert: asText},
		)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, id, changes); err != nil {
			return err
		}

		category, err = repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, classify(err, couldNotUpdate("Category"))
	}
	return category, nil
}
