package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleRider    = "rider"
)

// IsValidRole reports whether r is a known user role.
func IsValidRole(r string) bool {
	return r == RoleCustomer || r == RoleAdmin || r == RoleRider
}

// DeliveryAddress is an embedded document shared by User.Addresses and
// Order.DeliveryAddress.
type DeliveryAddress struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Floor        string `json:"floor,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}

// PaymentMethod is a saved payment option on a user profile, e.g.
// {type: "JazzCash", details: "03001234567"}.
type PaymentMethod struct {
	Type      string `json:"type"`
	Details   string `json:"details"`
	IsDefault bool   `json:"isDefault"`
}

// User represents a customer, admin, or rider profile.
type User struct {
	ID             string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name           string            `json:"name"`
	Email          string            `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Phone          string            `json:"phone,omitempty"`
	Addresses      []DeliveryAddress `json:"addresses" gorm:"serializer:json;type:text"`
	PaymentMethods []PaymentMethod   `json:"paymentMethods" gorm:"serializer:json;type:text"`
	Role           string            `json:"role" gorm:"type:varchar(16);default:customer"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
