package handlers

import (
	"fmt"
	"log"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"
	"pickmeup/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return respondError(c, err, "Category")
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category ID format.",
		})
	}
	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		log.Printf("Error getting category by ID %s: %v", id, err)
		return respondError(c, err, "Category")
	}
	return c.JSON(category)
}

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	category := &models.Category{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	}
	if err := h.service.CreateCategory(category); err != nil {
		if err == repositories.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": fmt.Sprintf("Category with name %q already exists.", req.Name),
			})
		}
		log.Printf("Error creating category: %v", err)
		return respondError(c, err, "Category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory applies a partial patch to a category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category ID format.",
		})
	}
	var upd services.CategoryUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	category, err := h.service.UpdateCategory(id, upd)
	if err != nil {
		if err == repositories.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Category with this name already exists.",
			})
		}
		log.Printf("Error updating category %s: %v", id, err)
		return respondError(c, err, "Category")
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category. Products referencing the category
// are left as-is.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category ID format.",
		})
	}
	if err := h.service.DeleteCategory(id); err != nil {
		log.Printf("Error deleting category %s: %v", id, err)
		return respondError(c, err, "Category")
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
