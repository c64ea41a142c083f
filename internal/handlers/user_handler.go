package handlers

import (
	"log"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"
	"pickmeup/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting users: %v", err)
		return respondError(c, err, "User")
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format.",
		})
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		log.Printf("Error getting user by ID %s: %v", id, err)
		return respondError(c, err, "User")
	}
	return c.JSON(user)
}

// CreateUserRequest is the request body for creating a user profile.
type CreateUserRequest struct {
	Name           string                   `json:"name" validate:"required"`
	Email          string                   `json:"email" validate:"required,email"`
	Phone          string                   `json:"phone"`
	Addresses      []models.DeliveryAddress `json:"addresses"`
	PaymentMethods []models.PaymentMethod   `json:"paymentMethods"`
	Role           string                   `json:"role" validate:"omitempty,oneof=customer admin rider"`
}

// HandleCreateUser creates a new user profile.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Addresses:      req.Addresses,
		PaymentMethods: req.PaymentMethods,
		Role:           req.Role,
	}
	if err := h.service.CreateUser(user); err != nil {
		if err == repositories.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "User with this email already exists.",
			})
		}
		log.Printf("Error creating user: %v", err)
		return respondError(c, err, "User")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser applies the generic self-service patch. Email and role are
// never updatable through this endpoint.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format.",
		})
	}
	var upd services.UserUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.service.UpdateUser(id, upd)
	if err != nil {
		log.Printf("Error updating user %s: %v", id, err)
		return respondError(c, err, "User")
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user by their ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format.",
		})
	}
	if err := h.service.DeleteUser(id); err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		return respondError(c, err, "User")
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
