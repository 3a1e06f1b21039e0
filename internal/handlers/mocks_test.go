package handlers

import (
	"context"
	"errors"

	"catalog-api/internal/models"
	"catalog-api/internal/services"
)

type MockCompanyService struct {
	Companies []models.Company
	Err       error

	lastID     int64
	lastCreate services.CreateCompanyRequest
	lastUpdate services.UpdateCompanyRequest
}

func (m *MockCompanyService) CreateCompany(_ context.Context, req services.CreateCompanyRequest) (*models.Company, error) {
	m.lastCreate = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.Company{ID: 1, Name: req.Name.String(), Active: true}, nil
}

func (m *MockCompanyService) ListCompanies(context.Context) ([]models.Company, error) {
	return m.Companies, m.Err
}

func (m *MockCompanyService) GetCompany(_ context.Context, id int64) (*models.Company, error) {
	m.lastID = id
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Companies[0], nil
}

func (m *MockCompanyService) UpdateCompany(_ context.Context, id int64, req services.UpdateCompanyRequest) (*models.Company, error) {
	m.lastID = id
	m.lastUpdate = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Companies[0], nil
}

type MockCategoryService struct {
	Categories []models.Category
	Err        error

	lastID     int64
	lastCreate services.CreateCategoryRequest
	lastUpdate services.UpdateCategoryRequest
}

func (m *MockCategoryService) CreateCategory(_ context.Context, req services.CreateCategoryRequest) (*models.Category, error) {
	m.lastCreate = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.Category{ID: 1, Name: req.Name.String()}, nil
}

func (m *MockCategoryService) ListCategories(context.Context) ([]models.Category, error) {
	return m.Categories, m.Err
}

func (m *MockCategoryService) GetCategory(_ context.Context, id int64) (*models.Category, error) {
	m.lastID = id
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Categories[0], nil
}

func (m *MockCategoryService) UpdateCategory(_ context.Context, id int64, req services.UpdateCategoryRequest) (*models.Category, error) {
	m.lastID = id
	m.lastUpdate = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Categories[0], nil
}

type MockProductService struct {
	Products []models.Product
	Err      error

	lastID      int64
	lastActive  *bool
	lastCreate  services.CreateProductRequest
	lastLink    services.CreateProductCategoryRequest
	lastUpdate  services.UpdateProductRequest
	calledByCID bool
}

func (m *MockProductService) CreateProduct(_ context.Context, req services.CreateProductRequest) (*models.Product, error) {
	m.lastCreate = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.Product{ID: 1, Name: req.Name.String(), Active: true}, nil
}

func (m *MockProductService) AddProductCategory(_ context.Context, req services.CreateProductCategoryRequest) (*models.ProductCategory, error) {
	m.lastLink = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.ProductCategory{ProductID: 1, CategoryID: 1}, nil
}

func (m *MockProductService) ListProducts(context.Context) ([]models.Product, error) {
	return m.Products, m.Err
}

func (m *MockProductService) ListProductsByActive(_ context.Context, active bool) ([]models.Product, error) {
	m.lastActive = &active
	return m.Products, m.Err
}

func (m *MockProductService) ListProductsByCompany(_ context.Context, companyID int64) ([]models.Product, error) {
	m.calledByCID = true
	m.lastID = companyID
	return m.Products, m.Err
}

func (m *MockProductService) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	m.lastID = id
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Products[0], nil
}

func (m *MockProductService) UpdateProduct(_ context.Context, id int64, req services.UpdateProductRequest) (*models.Product, error) {
	m.lastID = id
	m.lastUpdate = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Products[0], nil
}

type MockWarrantyService struct {
	Warranty *models.Warranty
	Err      error

	lastID     int64
	lastCreate services.CreateWarrantyRequest
}

func (m *MockWarrantyService) CreateWarranty(_ context.Context, req services.CreateWarrantyRequest) (*models.Warranty, error) {
	m.lastCreate = req
	return m.Warranty, m.Err
}

func (m *MockWarrantyService) GetWarranty(_ context.Context, id int64) (*models.Warranty, error) {
	m.lastID = id
	return m.Warranty, m.Err
}

func (m *MockWarrantyService) UpdateWarranty(_ context.Context, id int64, _ services.UpdateWarrantyRequest) (*models.Warranty, error) {
	m.lastID = id
	return m.Warranty, m.Err
}

type MockPinger struct {
	Err error
}

func (m MockPinger) Ping(context.Context) error { return m.Err }

var errConnLost = errors.New("db connection lost")
