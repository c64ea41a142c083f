package repositories

import (
	"pickmeup/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll lists products, optionally narrowed by category label and/or tag.
	// Empty filter values mean "no filter".
	GetAll(category, tag string) ([]models.Product, error)
	// Search matches q case-insensitively against name, description, category
	// and tags.
	Search(q string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
