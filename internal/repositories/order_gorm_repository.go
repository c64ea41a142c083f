package repositories

import (
	"errors"
	"fmt"

	"pickmeup/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns whitelists the order-listing sort keys. Arbitrary column names
// from the query string never reach the SQL layer.
var sortColumns = map[string]string{
	"orderDate":   "order_date",
	"totalAmount": "total_amount",
	"createdAt":   "created_at",
}

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// List returns one page of matching orders plus the total match count.
func (r *GORMOrderRepository) List(filter OrderFilter) ([]models.Order, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	tx := r.db.Model(&models.Order{})
	if filter.OrderStatus != "" {
		tx = tx.Where("order_status = ?", filter.OrderStatus)
	}
	if filter.PaymentStatus != "" {
		tx = tx.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "order_date"
	}
	direction := "DESC"
	if filter.Ascending {
		direction = "ASC"
	}

	var orders []models.Order
	err := tx.Order(column + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create persists a new order, generating an ID when none is set.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Update writes all fields of an existing order. A row that no longer exists
// reports ErrNotFound instead of being re-inserted.
func (r *GORMOrderRepository) Update(order *models.Order) error {
	res := r.db.Model(order).Select("*").Updates(order)
	if res.Error != nil {
		return fmt.Errorf("failed to update order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes an order by its ID. Stock is not replenished.
func (r *GORMOrderRepository) Delete(id string) error {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
