package models

import "time"

// Product represents a purchasable item. Category is a plain label, not a
// foreign key; deleting a Category leaves products referencing the dead name.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category" gorm:"index"`
	Stock       int       `json:"stock"`
	Tags        []string  `json:"tags" gorm:"serializer:json;type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
