package services_test

import (
	"fmt"
	"testing"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"
	"pickmeup/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(category, tag string) ([]models.Product, error) {
	args := m.Called(category, tag)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Search(q string) ([]models.Product, error) {
	args := m.Called(q)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Organic Bananas", Price: 2.49, Stock: 100},
		{ID: "2", Name: "Whole Milk 1L", Price: 1.89, Stock: 50},
	}

	mockRepo.On("GetAll", "", "").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts("", "")

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts_Filtered(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "1", Name: "Organic Bananas", Category: "Fruits & Vegetables", Tags: []string{"organic"}},
	}

	mockRepo.On("GetAll", "Fruits & Vegetables", "organic").Return(expected, nil).Once()

	products, err := service.GetAllProducts("Fruits & Vegetables", "organic")

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SearchProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "2", Name: "Whole Milk 1L", Price: 1.89},
	}

	mockRepo.On("Search", "milk").Return(expected, nil).Once()

	products, err := service.SearchProducts("milk")

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Organic Bananas", Price: 2.49, Stock: 100}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Sourdough Loaf", Price: 4.50, Stock: 20}

	// Test successful creation
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "1", Name: "Organic Bananas", Price: 2.49, Stock: 100}
	newPrice := 2.99
	newStock := 95

	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "1" && p.Price == 2.99 && p.Stock == 95 && p.Name == "Organic Bananas"
	})).Return(nil).Once()

	updated, err := service.UpdateProduct("1", services.ProductUpdate{Price: &newPrice, Stock: &newStock})
	assert.NoError(t, err)
	assert.Equal(t, 2.99, updated.Price)
	assert.Equal(t, 95, updated.Stock)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_EmptyPatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	_, err := service.UpdateProduct("1", services.ProductUpdate{})

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newPrice := 1.0
	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrNotFound).Once()

	_, err := service.UpdateProduct("99", services.ProductUpdate{Price: &newPrice})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Test successful deletion
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (e.g., product not found)
	mockRepo.On("Delete", "99").Return(repositories.ErrNotFound).Once()
	err = service.DeleteProduct("99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
