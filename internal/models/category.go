package models

import "time"

// Category represents a product grouping shown on the storefront.
type Category struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string `json:"name" gorm:"uniqueIndex;type:varchar(100)"`
	ImageURL string `json:"imageUrl"`
	// ProductCount is denormalized and not maintained by any write path.
	ProductCount int       `json:"productCount" gorm:"default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
