package services

import (
	"fmt"
	"strings"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"
)

// CategoryUpdate is a partial category patch. Nil pointers mean "field
// absent".
type CategoryUpdate struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory creates a new category. Names are unique across the family.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if existing, err := s.repo.GetByName(category.Name); err == nil && existing != nil {
		return repositories.ErrDuplicate
	}
	return s.repo.Create(category)
}

// UpdateCategory applies a partial patch to an existing category and returns
// the updated record.
func (s *CategoryService) UpdateCategory(id string, upd CategoryUpdate) (*models.Category, error) {
	if upd.Name == nil && upd.ImageURL == nil {
		return nil, invalidInput("No update data provided (name or imageUrl required).")
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, invalidInput("Category name must be a non-empty string.")
	}
	if upd.ImageURL != nil && strings.TrimSpace(*upd.ImageURL) == "" {
		return nil, invalidInput("Image URL must be a non-empty string.")
	}

	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name != category.Name {
			if existing, err := s.repo.GetByName(name); err == nil && existing != nil {
				return nil, repositories.ErrDuplicate
			}
			category.Name = name
		}
	}
	if upd.ImageURL != nil {
		category.ImageURL = strings.TrimSpace(*upd.ImageURL)
	}
	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return category, nil
}

// DeleteCategory deletes a category by its ID. Products referencing the
// category keep their label; nothing is reassigned.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}
