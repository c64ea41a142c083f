package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}))
	return db
}

func TestGORMProductRepository_UpdateMissingDoesNotInsert(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))

	product := models.Product{Name: "Whole Milk 1L", Price: 1.89}
	assert.NoError(t, repo.Create(&product))
	assert.NoError(t, repo.Delete(product.ID))

	// Updating a deleted row must report it missing, not resurrect it
	product.Price = 2.09
	assert.ErrorIs(t, repo.Update(&product), repositories.ErrNotFound)

	_, err := repo.GetByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMOrderRepository_UpdateMissingDoesNotInsert(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(openTestDB(t))

	order := models.Order{
		Items:         []models.OrderItem{{ProductID: "p1", Name: "Bananas", Price: 2.50, Quantity: 1}},
		TotalAmount:   2.50,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderAwaitingPayment,
	}
	assert.NoError(t, repo.Create(&order))
	assert.NoError(t, repo.Delete(order.ID))

	order.OrderStatus = models.OrderCancelled
	assert.ErrorIs(t, repo.Update(&order), repositories.ErrNotFound)

	_, err := repo.GetByID(order.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMProductRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))

	assert.NoError(t, repo.Create(&models.Product{Name: "Whole Milk 1L", Description: "Fresh whole milk"}))
	assert.NoError(t, repo.Create(&models.Product{Name: "100% Juice", Description: "No added sugar"}))

	// "%" only matches names containing a literal percent sign
	results, err := repo.Search("%")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "100% Juice", results[0].Name)

	results, err = repo.Search("_")
	assert.NoError(t, err)
	assert.Empty(t, results)

	results, err = repo.Search("MILK")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Whole Milk 1L", results[0].Name)
}
