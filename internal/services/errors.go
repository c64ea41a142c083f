package services

import "fmt"

// ValidationError marks request input a service refused. Handlers map it to
// 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidInput(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ProductNotFoundError indicates an order line referenced a product that does
// not exist. Handlers map it to 404.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %s not found.", e.ProductID)
}
