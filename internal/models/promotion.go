package models

import "time"

// Promotion display types. The enum is closed: anything else is rejected.
const (
	PromotionTypeBanner = "banner"
	PromotionTypeCard   = "card"
)

// IsValidPromotionType reports whether t is a known promotion type.
func IsValidPromotionType(t string) bool {
	return t == PromotionTypeBanner || t == PromotionTypeCard
}

// Promotion represents a storefront banner or promo card.
type Promotion struct {
	ID               string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"shortDescription,omitempty"`
	ImageURL         string     `json:"imageUrl"`
	Type             string     `json:"type" gorm:"index;type:varchar(16)"`
	DiscountCode     string     `json:"discountCode,omitempty"`
	ValidUntil       *time.Time `json:"validUntil,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
