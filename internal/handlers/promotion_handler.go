package handlers

import (
	"log"
	"time"

	"pickmeup/internal/models"
	"pickmeup/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PromotionHandler handles HTTP requests for promotions.
type PromotionHandler struct {
	service  *services.PromotionService
	validate *validator.Validate
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(service *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the promotion routes with the Fiber app.
func (h *PromotionHandler) RegisterRoutes(router fiber.Router) {
	promotionRoutes := router.Group("/promotions")
	promotionRoutes.Get("/", h.HandleGetPromotions)
	promotionRoutes.Get("/:id", h.HandleGetPromotionByID)
	promotionRoutes.Post("/", h.HandleCreatePromotion)
	promotionRoutes.Put("/:id", h.HandleUpdatePromotion)
	promotionRoutes.Delete("/:id", h.HandleDeletePromotion)
}

// HandleGetPromotions retrieves promotions, optionally filtered by ?type=.
func (h *PromotionHandler) HandleGetPromotions(c *fiber.Ctx) error {
	promotions, err := h.service.GetAllPromotions(c.Query("type"))
	if err != nil {
		log.Printf("Error getting promotions: %v", err)
		return respondError(c, err, "Promotion")
	}
	return c.JSON(promotions)
}

// HandleGetPromotionByID retrieves a single promotion by its ID.
func (h *PromotionHandler) HandleGetPromotionByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid promotion ID format.",
		})
	}
	promotion, err := h.service.GetPromotionByID(id)
	if err != nil {
		log.Printf("Error getting promotion by ID %s: %v", id, err)
		return respondError(c, err, "Promotion")
	}
	return c.JSON(promotion)
}

// CreatePromotionRequest is the request body for creating a promotion.
type CreatePromotionRequest struct {
	Title            string     `json:"title" validate:"required"`
	Description      string     `json:"description" validate:"required"`
	ShortDescription string     `json:"shortDescription"`
	ImageURL         string     `json:"imageUrl" validate:"required"`
	Type             string     `json:"type" validate:"required,oneof=banner card"`
	DiscountCode     string     `json:"discountCode"`
	ValidUntil       *time.Time `json:"validUntil"`
}

// HandleCreatePromotion creates a new promotion.
func (h *PromotionHandler) HandleCreatePromotion(c *fiber.Ctx) error {
	var req CreatePromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	promotion := &models.Promotion{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ImageURL:         req.ImageURL,
		Type:             req.Type,
		DiscountCode:     req.DiscountCode,
		ValidUntil:       req.ValidUntil,
	}
	if err := h.service.CreatePromotion(promotion); err != nil {
		log.Printf("Error creating promotion: %v", err)
		return respondError(c, err, "Promotion")
	}
	return c.Status(fiber.StatusCreated).JSON(promotion)
}

// HandleUpdatePromotion applies a partial patch to a promotion.
func (h *PromotionHandler) HandleUpdatePromotion(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid promotion ID format.",
		})
	}
	var upd services.PromotionUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	promotion, err := h.service.UpdatePromotion(id, upd)
	if err != nil {
		log.Printf("Error updating promotion %s: %v", id, err)
		return respondError(c, err, "Promotion")
	}
	return c.JSON(promotion)
}

// HandleDeletePromotion deletes a promotion by its ID.
func (h *PromotionHandler) HandleDeletePromotion(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid promotion ID format.",
		})
	}
	if err := h.service.DeletePromotion(id); err != nil {
		log.Printf("Error deleting promotion %s: %v", id, err)
		return respondError(c, err, "Promotion")
	}
	return c.JSON(fiber.Map{
		"message": "Promotion deleted successfully",
	})
}
