package handlers

import (
	"log"
	"strings"

	"pickmeup/internal/models"
	"pickmeup/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The search
// route must come before /:id so "search" is not read as an identity.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves products, optionally filtered by
// ?category=&tag=.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Query("category"), c.Query("tag"))
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return respondError(c, err, "Product")
	}
	return c.JSON(products)
}

// HandleSearchProducts performs a case-insensitive substring search over
// name, description, category and tags.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	q := c.Query("q")
	if strings.TrimSpace(q) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": `Search query "q" is required and must be a non-empty string.`,
		})
	}
	products, err := h.service.SearchProducts(q)
	if err != nil {
		log.Printf("Error searching products for %q: %v", q, err)
		return respondError(c, err, "Product")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID format.",
		})
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", id, err)
		return respondError(c, err, "Product")
	}
	return c.JSON(product)
}

// CreateProductRequest is the request body for creating a product. Price and
// stock are pointers so an explicit zero passes the presence check.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Tags        []string `json:"tags"`
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       *req.Stock,
		Tags:        req.Tags,
	}
	if err := h.service.CreateProduct(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err, "Product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial patch to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID format.",
		})
	}
	var upd services.ProductUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.UpdateProduct(id, upd)
	if err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return respondError(c, err, "Product")
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID format.",
		})
	}
	if err := h.service.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return respondError(c, err, "Product")
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
