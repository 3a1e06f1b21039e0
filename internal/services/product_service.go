package services

import (
	"context"
	"fmt"

	"catalog-api/internal/apperrors"
	"catalog-api/internal/models"
	"catalog-api/internal/repositories"
	"catalog-api/internal/requests"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const productCategoryEntity = "Product-Category association"

type ProductService struct {
	tx       *repositories.Transactor
	products *repositories.ProductRepository
	links    *repositories.ProductCategoryRepository
	log      *zap.Logger
}

func NewProductService(
	tx *repositories.Transactor,
	products *repositories.ProductRepository,
	links *repositories.ProductCategoryRepository,
	log *zap.Logger,
) *ProductService {
	return &ProductService{
		tx:       tx,
		products: products,
		links:    links,
		log:      log,
	}
}

type CreateProductRequest struct {
	Name        requests.Field `json:"product_name" form:"product_name" binding:"required"`
	CompanyID   requests.Field `json:"company_id" form:"company_id" binding:"required"`
	Description requests.Field `json:"description" form:"description"`
	Price       requests.Field `json:"price" form:"price"`
}

type UpdateProductRequest struct {
	Name        requests.Field `json:"product_name" form:"product_name"`
	CompanyID   requests.Field `json:"company_id" form:"company_id"`
	Description requests.Field `json:"description" form:"description"`
	Price       requests.Field `json:"price" form:"price"`
	Active      requests.Field `json:"active" form:"active"`
}

type CreateProductCategoryRequest struct {
	CategoryID requests.Field `json:"category_id" form:"category_id" binding:"required"`
	ProductID  requests.Field `json:"product_id" form:"product_id" binding:"required"`
}

// newProduct converts the request into column values. A blank price is
// stored as NULL.
func (req CreateProductRequest) newProduct() (repositories.NewProduct, error) {
	p := repositories.NewProduct{Name: req.Name.String()}

	companyID, err := req.CompanyID.Int64()
	if err != nil {
		return p, err
	}
	p.CompanyID = companyID

	if req.Description.IsSet() {
		desc := req.Description.String()
		p.Description = &desc
	}

	if !req.Price.Blank() {
		price, err := req.Price.Decimal()
		if err != nil {
			return p, err
		}
		p.Price = decimal.NewNullDecimal(price)
	}
	return p, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	if err := requests.Validate(&req); err != nil {
		return nil, err
	}
	newProduct, err := req.newProduct()
	if err != nil {
		return nil, apperrors.CouldNotAdd("Product", err)
	}

	var product *models.Product
	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.products.WithTx(tx)

		existing, err := repo.FindByName(ctx, newProduct.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return &apperrors.ConflictError{Entity: "Product"}
		}

		product, err = repo.Create(ctx, newProduct)
		return err
	})
	if err != nil {
		return nil, classify(err, couldNotAdd("Product"))
	}

	s.log.Info("product created", zap.Int64("product_id", product.ID), zap.String("product_name", product.Name))
	return product, nil
}

func (s *ProductService) AddProductCategory(ctx context.Context, req CreateProductCategoryRequest) (*models.ProductCategory, error) {
	if err := requests.Validate(&req); err != nil {
		return nil, err
	}

	categoryID, err := req.CategoryID.Int64()
	if err != nil {
		return nil, apperrors.CouldNotAdd(productCategoryEntity, err)
	}
	productID, err := req.ProductID.Int64()
	if err != nil {
		return nil, apperrors.CouldNotAdd(productCategoryEntity, err)
	}
	link := models.ProductCategory{ProductID: productID, CategoryID: categoryID}

	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.links.WithTx(tx)

		existing, err := repo.Find(ctx, link)
		if err != nil {
			return err
		}
		if existing != nil {
			return &apperrors.ConflictError{Entity: productCategoryEntity}
		}

		return repo.Create(ctx, link)
	})
	if err != nil {
		return nil, classify(err, couldNotAdd(productCategoryEntity))
	}

	s.log.Info("product linked to category", zap.Int64("product_id", productID), zap.Int64("category_id", categoryID))
	return &link, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.List(ctx)
	return productList(products, err)
}

func (s *ProductService) ListProductsByActive(ctx context.Context, active bool) ([]models.Product, error) {
	products, err := s.products.ListByActive(ctx, active)
	return productList(products, err)
}

func (s *ProductService) ListProductsByCompany(ctx context.Context, companyID int64) ([]models.Product, error) {
	products, err := s.products.ListByCompanyID(ctx, companyID)
	return productList(products, err)
}

func productList(products []models.Product, err error) ([]models.Product, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) == 0 {
		return nil, &apperrors.NotFoundError{Entity: "products"}
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	if product == nil {
		return nil, &apperrors.NotFoundError{Entity: "product"}
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (*models.Product, error) {
	var product *models.Product
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.products.WithTx(tx)

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return &apperrors.NotFoundError{Entity: "product"}
		}

		changes, err := changesFrom(
			column{name: "product_name", value: req.Name, convert: asText},
			column{name: "company_id", value: req.CompanyID, convert: asInt},
			column{name: "description", value: req.Description, convert: asText},
			column{name: "price", value: req.Price, convert: asDecimal},
			column{name: "active", value: req.Active, convert: asBool},
		)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, id, changes); err != nil {
			return err
		}

		product, err = repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, classify(err, couldNotUpdate("Product"))
	}
	return product, nil
}
