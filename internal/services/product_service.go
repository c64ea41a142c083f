package services

import (
	"pickmeup/internal/models"
	"pickmeup/internal/repositories"
)

// ProductUpdate is a partial product patch. Nil pointers mean "field absent".
type ProductUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	ImageURL    *string   `json:"imageUrl"`
	Category    *string   `json:"category"`
	Stock       *int      `json:"stock"`
	Tags        *[]string `json:"tags"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves products, optionally filtered by category and/or tag.
func (s *ProductService) GetAllProducts(category, tag string) ([]models.Product, error) {
	return s.repo.GetAll(category, tag)
}

// SearchProducts matches q case-insensitively against name, description,
// category and tags.
func (s *ProductService) SearchProducts(q string) ([]models.Product, error) {
	return s.repo.Search(q)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. Field presence is checked at the
// handler boundary.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct applies a partial patch to an existing product and returns
// the updated record.
func (s *ProductService) UpdateProduct(id string, upd ProductUpdate) (*models.Product, error) {
	if upd.Name == nil && upd.Description == nil && upd.Price == nil &&
		upd.ImageURL == nil && upd.Category == nil && upd.Stock == nil && upd.Tags == nil {
		return nil, invalidInput("No update data provided.")
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.ImageURL != nil {
		product.ImageURL = *upd.ImageURL
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if upd.Stock != nil {
		product.Stock = *upd.Stock
	}
	if upd.Tags != nil {
		product.Tags = *upd.Tags
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
