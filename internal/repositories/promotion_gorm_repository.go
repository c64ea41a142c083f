package repositories

import (
	"errors"
	"fmt"

	"pickmeup/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPromotionRepository is a GORM implementation of PromotionRepository.
type GORMPromotionRepository struct {
	db *gorm.DB
}

// NewGORMPromotionRepository creates a new instance of GORMPromotionRepository.
func NewGORMPromotionRepository(db *gorm.DB) *GORMPromotionRepository {
	return &GORMPromotionRepository{
		db: db,
	}
}

// GetAll retrieves promotions, optionally filtered by type.
func (r *GORMPromotionRepository) GetAll(promoType string) ([]models.Promotion, error) {
	var promotions []models.Promotion
	tx := r.db
	if promoType != "" {
		tx = tx.Where("type = ?", promoType)
	}
	if err := tx.Find(&promotions).Error; err != nil {
		return nil, fmt.Errorf("failed to get promotions: %w", err)
	}
	return promotions, nil
}

// GetByID retrieves a single promotion by its ID.
func (r *GORMPromotionRepository) GetByID(id string) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := r.db.First(&promotion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get promotion by ID %s: %w", id, err)
	}
	return &promotion, nil
}

// Create creates a new promotion, generating an ID when none is set.
func (r *GORMPromotionRepository) Create(promotion *models.Promotion) error {
	if promotion.ID == "" {
		promotion.ID = uuid.New().String()
	}
	if err := r.db.Create(promotion).Error; err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// Update writes all fields of an existing promotion. A row that no longer
// exists reports ErrNotFound instead of being re-inserted.
func (r *GORMPromotionRepository) Update(promotion *models.Promotion) error {
	res := r.db.Model(promotion).Select("*").Updates(promotion)
	if res.Error != nil {
		return fmt.Errorf("failed to update promotion: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a promotion by its ID.
func (r *GORMPromotionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Promotion{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete promotion: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
