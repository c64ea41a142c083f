package services

import (
	"time"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"
)

// PromotionUpdate is a partial promotion patch. Nil pointers mean "field
// absent".
type PromotionUpdate struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"shortDescription"`
	ImageURL         *string    `json:"imageUrl"`
	Type             *string    `json:"type"`
	DiscountCode     *string    `json:"discountCode"`
	ValidUntil       *time.Time `json:"validUntil"`
}

// PromotionService handles business logic related to promotions.
type PromotionService struct {
	repo repositories.PromotionRepository
}

// NewPromotionService creates a new PromotionService.
func NewPromotionService(repo repositories.PromotionRepository) *PromotionService {
	return &PromotionService{
		repo: repo,
	}
}

// GetAllPromotions retrieves promotions. An unknown type filter is ignored
// rather than rejected.
func (s *PromotionService) GetAllPromotions(promoType string) ([]models.Promotion, error) {
	if !models.IsValidPromotionType(promoType) {
		promoType = ""
	}
	return s.repo.GetAll(promoType)
}

// GetPromotionByID retrieves a single promotion by its ID.
func (s *PromotionService) GetPromotionByID(id string) (*models.Promotion, error) {
	return s.repo.GetByID(id)
}

// CreatePromotion creates a new promotion. The type enum is closed.
func (s *PromotionService) CreatePromotion(promotion *models.Promotion) error {
	if !models.IsValidPromotionType(promotion.Type) {
		return invalidInput(`Invalid promotion type. Must be "banner" or "card".`)
	}
	return s.repo.Create(promotion)
}

// UpdatePromotion applies a partial patch to an existing promotion and
// returns the updated record.
func (s *PromotionService) UpdatePromotion(id string, upd PromotionUpdate) (*models.Promotion, error) {
	if upd.Title == nil && upd.Description == nil && upd.ShortDescription == nil &&
		upd.ImageURL == nil && upd.Type == nil && upd.DiscountCode == nil && upd.ValidUntil == nil {
		return nil, invalidInput("No update data provided.")
	}
	if upd.Type != nil && !models.IsValidPromotionType(*upd.Type) {
		return nil, invalidInput(`Invalid promotion type. Must be "banner" or "card".`)
	}

	promotion, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		promotion.Title = *upd.Title
	}
	if upd.Description != nil {
		promotion.Description = *upd.Description
	}
	if upd.ShortDescription != nil {
		promotion.ShortDescription = *upd.ShortDescription
	}
	if upd.ImageURL != nil {
		promotion.ImageURL = *upd.ImageURL
	}
	if upd.Type != nil {
		promotion.Type = *upd.Type
	}
	if upd.DiscountCode != nil {
		promotion.DiscountCode = *upd.DiscountCode
	}
	if upd.ValidUntil != nil {
		promotion.ValidUntil = upd.ValidUntil
	}
	if err := s.repo.Update(promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

// DeletePromotion deletes a promotion by its ID.
func (s *PromotionService) DeletePromotion(id string) error {
	return s.repo.Delete(id)
}
