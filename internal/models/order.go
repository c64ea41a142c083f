package models

import "time"

// Payment statuses.
const (
	PaymentPending    = "Pending"
	PaymentPaid       = "Paid"
	PaymentFailed     = "Failed"
	PaymentRefunded   = "Refunded"
	PaymentProcessing = "Processing"
)

// Order statuses.
const (
	OrderAwaitingPayment = "AwaitingPayment"
	OrderPending         = "Pending"
	OrderProcessing      = "Processing"
	OrderPickedUp        = "PickedUp"
	OrderEnRoute         = "EnRoute"
	OrderShipped         = "Shipped"
	OrderDelivered       = "Delivered"
	OrderCancelled       = "Cancelled"
)

var paymentStatuses = map[string]bool{
	PaymentPending:    true,
	PaymentPaid:       true,
	PaymentFailed:     true,
	PaymentRefunded:   true,
	PaymentProcessing: true,
}

var orderStatuses = map[string]bool{
	OrderAwaitingPayment: true,
	OrderPending:         true,
	OrderProcessing:      true,
	OrderPickedUp:        true,
	OrderEnRoute:         true,
	OrderShipped:         true,
	OrderDelivered:       true,
	OrderCancelled:       true,
}

// IsValidPaymentStatus reports whether s is a known payment status.
func IsValidPaymentStatus(s string) bool { return paymentStatuses[s] }

// IsValidOrderStatus reports whether s is a known order status.
func IsValidOrderStatus(s string) bool { return orderStatuses[s] }

// OrderItem is a line item with product fields snapshotted at order time.
// Later product edits never change these copies.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}

// RiderDetails describes the rider assigned to an order.
type RiderDetails struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// PickupAddress is used when the rider collects from somewhere other than the
// main store, e.g. a restaurant partner.
type PickupAddress struct {
	Name       string  `json:"name,omitempty"`
	Street     string  `json:"street,omitempty"`
	City       string  `json:"city,omitempty"`
	PostalCode string  `json:"postalCode,omitempty"`
	Country    string  `json:"country,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

// Order represents a customer order. UserID is empty for guest checkouts.
type Order struct {
	ID                      string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID                  string          `json:"userId,omitempty" gorm:"index;type:varchar(36)"`
	RiderID                 string          `json:"riderId,omitempty" gorm:"type:varchar(36)"`
	Items                   []OrderItem     `json:"items" gorm:"serializer:json;type:text"`
	TotalAmount             float64         `json:"totalAmount"`
	DeliveryAddress         DeliveryAddress `json:"deliveryAddress" gorm:"serializer:json;type:text"`
	PaymentMethod           string          `json:"paymentMethod"`
	PaymentDetails          string          `json:"paymentDetails,omitempty"`
	PaymentStatus           string          `json:"paymentStatus" gorm:"index;type:varchar(16)"`
	OrderStatus             string          `json:"orderStatus" gorm:"index;type:varchar(24)"`
	OrderDate               time.Time       `json:"orderDate"`
	EstimatedDeliveryTime   string          `json:"estimatedDeliveryTime,omitempty"`
	RiderTip                float64         `json:"riderTip"`
	SpecialInstructions     string          `json:"specialInstructions,omitempty"`
	AdminNotes              string          `json:"adminNotes,omitempty"`
	RiderNotes              string          `json:"riderNotes,omitempty"`
	ProofOfDeliveryImageURL string          `json:"proofOfDeliveryImageUrl,omitempty"`
	RiderDetails            *RiderDetails   `json:"riderDetails,omitempty" gorm:"serializer:json;type:text"`
	PickupAddress           *PickupAddress  `json:"pickupAddress,omitempty" gorm:"serializer:json;type:text"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
}
