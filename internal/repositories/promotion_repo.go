package repositories

import "pickmeup/internal/models"

// PromotionRepository defines the interface for promotion data access.
type PromotionRepository interface {
	// GetAll lists promotions, optionally narrowed by type ("banner"/"card").
	GetAll(promoType string) ([]models.Promotion, error)
	GetByID(id string) (*models.Promotion, error)
	Create(promotion *models.Promotion) error
	Update(promotion *models.Promotion) error
	Delete(id string) error
}
