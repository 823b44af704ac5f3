package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryMethod is how the order reaches the buyer.
type DeliveryMethod string

const (
	DeliveryPlatformCourier   DeliveryMethod = "platform_courier"
	DeliveryThirdPartyCourier DeliveryMethod = "third_party_courier"
	DeliverySellerPickup      DeliveryMethod = "seller_pickup"
)

// DeliveryStatus is the fulfilment state of a delivery.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusAssigned  DeliveryStatus = "assigned"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
	DeliveryStatusReturned  DeliveryStatus = "returned"
)

// Delivery is the single delivery record attached to an order.
// Checkout creates it in pending status with the platform courier.
type Delivery struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OrderID         uuid.UUID       `json:"orderId" db:"order_id"`
	DeliveryMethod  DeliveryMethod  `json:"deliveryMethod" db:"delivery_method"`
	Status          DeliveryStatus  `json:"status" db:"status"`
	DeliveryAddress ShippingAddress `json:"deliveryAddress" db:"delivery_address"`
	RecipientName   string          `json:"recipientName" db:"recipient_name"`
	RecipientPhone  string          `json:"recipientPhone" db:"recipient_phone"`
	DeliveryNotes   *string         `json:"deliveryNotes,omitempty" db:"delivery_notes"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}
