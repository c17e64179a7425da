package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses
const (
	OrderStatusPending    = "PENDING"
	OrderStatusPaid       = "PAID"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// Payment methods
const (
	PaymentMethodCard     = "CARD"
	PaymentMethodCash     = "CASH"
	PaymentMethodTransfer = "TRANSFER"
)

// Valid order status transitions: from -> []to
var ValidOrderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func IsValidOrderTransition(from, to string) bool {
	allowed, ok := ValidOrderTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID              uuid.UUID   `json:"id"`
	BuyerID         uuid.UUID   `json:"buyer_id"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	GrandTotal      float64     `json:"grand_total"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"` // CARD / CASH / TRANSFER
	PaymentStatus   string      `json:"payment_status"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Grade       string    `json:"grade"`
	QuantityKg  float64   `json:"quantity_kg"`
	PricePerKg  float64   `json:"price_per_kg"`
	Subtotal    float64   `json:"subtotal"`
}
