package service

import (
	"errors"
	"fmt"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/pkg/validator"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

type CatalogService interface {
	CreateCategory(req *model.Category) error
	ListCategories() ([]model.Category, error)
	CreateProduct(req *model.Product) error
	ListProducts() ([]model.ProductResponse, error)
	UpdateProduct(id uint, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uint) error
}

// UpdateProductRequest is a partial update: nil fields keep their prior
// values.
type UpdateProductRequest struct {
	Designation  *string  `json:"designation"`
	Description  *string  `json:"description"`
	CategoryID   *uint    `json:"category_id"`
	MinThreshold *float64 `json:"min_threshold"`
	MaxThreshold *float64 `json:"max_threshold"`
	RFIDTag      *string  `json:"rfid_tag"`
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
	}
}

func (s *catalogService) CreateCategory(req *model.Category) error {
	// Duplicate names are allowed
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	return s.categoryRepo.Create(req)
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// The category must resolve before anything is written
	category, err := s.categoryRepo.FindByID(req.CategoryID)
	if err != nil {
		return ErrCategoryNotFound
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	req.Category = *category
	return nil
}

func (s *catalogService) ListProducts() ([]model.ProductResponse, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = p.ToResponse()
	}
	return responses, nil
}

func (s *catalogService) UpdateProduct(id uint, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	// Re-validate the category before committing anything
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = *req.CategoryID
	}

	if req.Designation != nil {
		product.Designation = *req.Designation
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.MinThreshold != nil {
		product.MinThreshold = *req.MinThreshold
	}
	if req.MaxThreshold != nil {
		product.MaxThreshold = *req.MaxThreshold
	}
	if req.RFIDTag != nil {
		product.RFIDTag = req.RFIDTag
	}

	if err := s.productRepo.Save(product); err != nil {
		return nil, err
	}

	return s.productRepo.FindByID(id)
}

func (s *catalogService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}
