package handlers

import (
	"log"
	"strings"

	"pickmeup/internal/repositories"
	"pickmeup/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Put("/admin/:id", h.HandleAdminUpdateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleGetOrders retrieves orders with optional status, payment and user
// filters, sorted and paginated.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	// A malformed user reference is ignored rather than matching nothing,
	// same as on order creation.
	userID := c.Query("userId")
	if userID != "" {
		if _, err := uuid.Parse(userID); err != nil {
			userID = ""
		}
	}
	filter := repositories.OrderFilter{
		OrderStatus:   c.Query("orderStatus"),
		PaymentStatus: c.Query("paymentStatus"),
		UserID:        userID,
		Page:          c.QueryInt("page", 1),
		Limit:         c.QueryInt("limit", 20),
		SortBy:        c.Query("sortBy", "orderDate"),
		Ascending:     strings.EqualFold(c.Query("sortOrder", "desc"), "asc"),
	}

	orders, total, err := h.service.ListOrders(filter)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return respondError(c, err, "Order")
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)
	page := filter.Page
	if page < 1 {
		page = 1
	}

	return c.JSON(fiber.Map{
		"orders":      orders,
		"currentPage": page,
		"totalPages":  totalPages,
		"totalOrders": total,
	})
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order ID format.",
		})
	}
	order, err := h.service.GetOrderByID(id)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", id, err)
		return respondError(c, err, "Order")
	}
	return c.JSON(order)
}

// HandleCreateOrder creates a new order. Item prices and names are resolved
// server-side from the product catalog, never trusted from the client.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var in services.CreateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.CreateOrder(in)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondError(c, err, "Order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleAdminUpdateOrder applies an administrative patch to an order.
func (h *OrderHandler) HandleAdminUpdateOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order ID format.",
		})
	}
	var upd services.AdminOrderUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.UpdateOrderAdmin(id, upd)
	if err != nil {
		log.Printf("Error updating order %s: %v", id, err)
		return respondError(c, err, "Order")
	}
	return c.JSON(order)
}

// HandleDeleteOrder deletes an order by its ID.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order ID format.",
		})
	}
	if err := h.service.DeleteOrder(id); err != nil {
		log.Printf("Error deleting order %s: %v", id, err)
		return respondError(c, err, "Order")
	}
	return c.JSON(fiber.Map{
		"message": "Order deleted successfully",
	})
}
