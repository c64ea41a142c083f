package repositories_test

import (
	"testing"
	"time"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMockProductRepository_Filters(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	milk := models.Product{Name: "Whole Milk 1L", Category: "Dairy & Eggs", Tags: []string{"dairy", "sale"}}
	bread := models.Product{Name: "Sourdough Loaf", Category: "Bakery", Tags: []string{"wholesale"}}
	assert.NoError(t, repo.Create(&milk))
	assert.NoError(t, repo.Create(&bread))
	assert.NotEmpty(t, milk.ID)

	all, err := repo.GetAll("", "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	dairy, err := repo.GetAll("Dairy & Eggs", "")
	assert.NoError(t, err)
	assert.Len(t, dairy, 1)
	assert.Equal(t, "Whole Milk 1L", dairy[0].Name)

	// Tag filter matches whole tags only
	sale, err := repo.GetAll("", "sale")
	assert.NoError(t, err)
	assert.Len(t, sale, 1)
	assert.Equal(t, "Whole Milk 1L", sale[0].Name)

	none, err := repo.GetAll("Beverages", "")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestMockProductRepository_Search(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	assert.NoError(t, repo.Create(&models.Product{Name: "Whole Milk 1L", Description: "Fresh whole milk"}))
	assert.NoError(t, repo.Create(&models.Product{Name: "Sourdough Loaf", Description: "Stone-baked bread", Tags: []string{"bakery"}}))

	// Search is case-insensitive and spans name, description and tags
	results, err := repo.Search("MILK")
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = repo.Search("bakery")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Sourdough Loaf", results[0].Name)

	results, err = repo.Search("nothing-here")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestMockProductRepository_NotFound(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Update(&models.Product{ID: "missing"}), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("missing"), repositories.ErrNotFound)
}

func seedOrders(t *testing.T, repo *repositories.MockOrderRepository) []models.Order {
	t.Helper()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{OrderStatus: models.OrderPending, PaymentStatus: models.PaymentPaid, UserID: "u1", TotalAmount: 30, OrderDate: base},
		{OrderStatus: models.OrderDelivered, PaymentStatus: models.PaymentPaid, UserID: "u1", TotalAmount: 10, OrderDate: base.Add(time.Hour)},
		{OrderStatus: models.OrderPending, PaymentStatus: models.PaymentPending, UserID: "u2", TotalAmount: 20, OrderDate: base.Add(2 * time.Hour)},
	}
	for i := range orders {
		assert.NoError(t, repo.Create(&orders[i]))
	}
	return orders
}

func TestMockOrderRepository_ListFilters(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	seedOrders(t, repo)

	pending, total, err := repo.List(repositories.OrderFilter{OrderStatus: models.OrderPending})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, pending, 2)

	paidForU1, total, err := repo.List(repositories.OrderFilter{PaymentStatus: models.PaymentPaid, UserID: "u1"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, paidForU1, 2)

	none, total, err := repo.List(repositories.OrderFilter{OrderStatus: models.OrderCancelled})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, none)
}

func TestMockOrderRepository_ListSorting(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	seedOrders(t, repo)

	// Default sort is order date, newest first
	byDate, _, err := repo.List(repositories.OrderFilter{})
	assert.NoError(t, err)
	assert.Len(t, byDate, 3)
	assert.True(t, byDate[0].OrderDate.After(byDate[1].OrderDate))
	assert.True(t, byDate[1].OrderDate.After(byDate[2].OrderDate))

	byAmount, _, err := repo.List(repositories.OrderFilter{SortBy: "totalAmount", Ascending: true})
	assert.NoError(t, err)
	assert.Equal(t, 10.0, byAmount[0].TotalAmount)
	assert.Equal(t, 30.0, byAmount[2].TotalAmount)
}

func TestMockOrderRepository_ListPagination(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	seedOrders(t, repo)

	page1, total, err := repo.List(repositories.OrderFilter{Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page1, 2)

	page2, total, err := repo.List(repositories.OrderFilter{Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page2, 1)

	// A page beyond the data is empty but the total is still reported
	page9, total, err := repo.List(repositories.OrderFilter{Page: 9, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page9)

	// Non-positive paging values fall back to the defaults
	defaulted, _, err := repo.List(repositories.OrderFilter{Page: -1, Limit: 0})
	assert.NoError(t, err)
	assert.Len(t, defaulted, 3)
}
