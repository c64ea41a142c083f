package repositories

import (
	"pickmeup/internal/models"
)

// OrderFilter narrows and pages an order listing. Zero values mean
// "no filter"; Page/Limit are normalized by the repository.
type OrderFilter struct {
	OrderStatus   string
	PaymentStatus string
	UserID        string
	Page          int
	Limit         int
	// SortBy is one of "orderDate", "totalAmount", "createdAt"; anything else
	// falls back to orderDate.
	SortBy    string
	Ascending bool
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// List returns one page of matching orders plus the total match count.
	List(filter OrderFilter) ([]models.Order, int64, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	Delete(id string) error
}
