package handlers

import (
	"errors"
	"fmt"

	"pickmeup/internal/repositories"
	"pickmeup/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps service and storage errors to HTTP responses. family is
// the entity name used in not-found messages, e.g. "Category".
func respondError(c *fiber.Ctx, err error, family string) error {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": vErr.Message,
		})
	}

	var pnfErr *services.ProductNotFoundError
	if errors.As(err, &pnfErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": pnfErr.Error(),
		})
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": family + " not found",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Server error",
		"error":   err.Error(),
	})
}

// validationFailed renders a validator.v10 error as a per-field error map.
func validationFailed(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
