package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events. *rabbitmq.Client satisfies
// it; a nil publisher disables publishing.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CreateOrderItemInput is one requested line: a product reference and a
// quantity. Name/price/image are snapshotted from the product, never taken
// from the caller.
type CreateOrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderInput is the input to the order placement workflow.
type CreateOrderInput struct {
	UserID              string                 `json:"userId"`
	Items               []CreateOrderItemInput `json:"items"`
	DeliveryAddress     models.DeliveryAddress `json:"deliveryAddress"`
	PaymentMethod       string                 `json:"paymentMethod"`
	PaymentDetails      string                 `json:"paymentDetails"`
	PaymentStatus       string                 `json:"paymentStatus"`
	OrderStatus         string                 `json:"orderStatus"`
	RiderTip            float64                `json:"riderTip"`
	SpecialInstructions string                 `json:"specialInstructions"`
}

// AdminOrderUpdate is the admin patch over an order. Nil pointers mean "field
// absent"; AdminNotes and friends may be set to the empty string on purpose.
type AdminOrderUpdate struct {
	OrderStatus           *string `json:"orderStatus"`
	PaymentStatus         *string `json:"paymentStatus"`
	AdminNotes            *string `json:"adminNotes"`
	EstimatedDeliveryTime *string `json:"estimatedDeliveryTime"`
	PaymentDetails        *string `json:"paymentDetails"`
}

// OrderService handles business logic related to orders, most importantly the
// order placement and pricing workflow.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// ListOrders returns one page of orders plus the total match count.
func (s *OrderService) ListOrders(filter repositories.OrderFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder places an order. All validation and product lookups complete
// before the write, so no partial order is ever persisted on a failure path.
// Stock is read for snapshotting only and never decremented; two concurrent
// orders against the same product may both succeed.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, invalidInput("Order must contain at least one item.")
	}
	addr := in.DeliveryAddress
	if addr.Street == "" || addr.City == "" || addr.PostalCode == "" || addr.Country == "" {
		return nil, invalidInput("Valid delivery address (street, city, postalCode, country) is required.")
	}
	if in.PaymentMethod == "" {
		return nil, invalidInput("Payment method is required and must be a string.")
	}

	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentPending
	}
	if !models.IsValidPaymentStatus(paymentStatus) {
		return nil, invalidInput("Invalid payment status: %s", paymentStatus)
	}
	orderStatus := in.OrderStatus
	if orderStatus == "" {
		orderStatus = models.OrderAwaitingPayment
	}
	if !models.IsValidOrderStatus(orderStatus) {
		return nil, invalidInput("Invalid order status: %s", orderStatus)
	}

	// Resolve each requested item in the order given, snapshotting product
	// fields and accumulating the running total.
	var totalAmount float64
	orderItems := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		if _, err := uuid.Parse(item.ProductID); err != nil || item.Quantity <= 0 {
			return nil, invalidInput("Invalid item data: Product ID and positive quantity required. Problem with item: %s", describeItem(item))
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if err == repositories.ErrNotFound {
				return nil, &ProductNotFoundError{ProductID: item.ProductID}
			}
			return nil, fmt.Errorf("failed to look up product %s: %w", item.ProductID, err)
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			ImageURL:  product.ImageURL,
		})
		totalAmount += product.Price * float64(item.Quantity)
	}

	// A positive tip joins the total; a non-positive tip is stored but never
	// priced in.
	if in.RiderTip > 0 {
		totalAmount += in.RiderTip
	}

	// Marking an order paid up front skips the AwaitingPayment stage.
	if paymentStatus == models.PaymentPaid {
		orderStatus = models.OrderPending
	}

	userID := in.UserID
	if userID != "" {
		// A malformed user reference turns the order into a guest order
		// rather than failing it.
		if _, err := uuid.Parse(userID); err != nil {
			userID = ""
		}
	}

	newOrder := &models.Order{
		ID:                  uuid.New().String(),
		UserID:              userID,
		Items:               orderItems,
		TotalAmount:         totalAmount,
		DeliveryAddress:     in.DeliveryAddress,
		PaymentMethod:       in.PaymentMethod,
		PaymentDetails:      in.PaymentDetails,
		PaymentStatus:       paymentStatus,
		OrderStatus:         orderStatus,
		OrderDate:           time.Now(),
		RiderTip:            in.RiderTip,
		SpecialInstructions: in.SpecialInstructions,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderId":     newOrder.ID,
		"userId":      newOrder.UserID,
		"orderStatus": newOrder.OrderStatus,
		"totalAmount": newOrder.TotalAmount,
	})

	return newOrder, nil
}

// UpdateOrderAdmin applies an admin patch (status, notes, payment fields) to
// an existing order and returns the updated record.
func (s *OrderService) UpdateOrderAdmin(id string, upd AdminOrderUpdate) (*models.Order, error) {
	applied := 0
	if upd.OrderStatus != nil && *upd.OrderStatus != "" {
		if !models.IsValidOrderStatus(*upd.OrderStatus) {
			return nil, invalidInput("Invalid order status: %s", *upd.OrderStatus)
		}
		applied++
	}
	if upd.PaymentStatus != nil && *upd.PaymentStatus != "" {
		if !models.IsValidPaymentStatus(*upd.PaymentStatus) {
			return nil, invalidInput("Invalid payment status: %s", *upd.PaymentStatus)
		}
		applied++
	}
	if upd.AdminNotes != nil {
		applied++
	}
	if upd.EstimatedDeliveryTime != nil {
		applied++
	}
	if upd.PaymentDetails != nil {
		applied++
	}
	if applied == 0 {
		return nil, invalidInput("No update data provided.")
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if upd.OrderStatus != nil && *upd.OrderStatus != "" && *upd.OrderStatus != order.OrderStatus {
		order.OrderStatus = *upd.OrderStatus
		statusChanged = true
	}
	if upd.PaymentStatus != nil && *upd.PaymentStatus != "" {
		order.PaymentStatus = *upd.PaymentStatus
	}
	if upd.AdminNotes != nil {
		order.AdminNotes = *upd.AdminNotes
	}
	if upd.EstimatedDeliveryTime != nil {
		order.EstimatedDeliveryTime = *upd.EstimatedDeliveryTime
	}
	if upd.PaymentDetails != nil {
		order.PaymentDetails = *upd.PaymentDetails
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}

	if statusChanged {
		s.publishEvent("order.status.updated", map[string]interface{}{
			"orderId":     order.ID,
			"orderStatus": order.OrderStatus,
		})
	}

	return order, nil
}

// DeleteOrder removes an order. Stock is not replenished.
func (s *OrderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}

// publishEvent sends an order event best-effort: failures are logged, never
// surfaced to the caller.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish("orders", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}

func describeItem(item CreateOrderItemInput) string {
	b, err := json.Marshal(item)
	if err != nil {
		return fmt.Sprintf("%+v", item)
	}
	return string(b)
}
