package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. Checkout only ever
// creates orders in StatusPending; later transitions are driven by
// seller and admin actions outside this service.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// Order is one per-seller order produced by checkout. A multi-seller
// cart fans out into one Order per distinct seller.
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OrderNumber     string          `json:"orderNumber" db:"order_number"`
	BuyerID         uuid.UUID       `json:"buyerId" db:"buyer_id"`
	SellerID        uuid.UUID       `json:"sellerId" db:"seller_id"`
	Status          OrderStatus     `json:"status" db:"status"`
	Subtotal        float64         `json:"subtotal" db:"subtotal"`
	TaxAmount       float64         `json:"taxAmount" db:"tax_amount"`
	ShippingCost    float64         `json:"shippingCost" db:"shipping_cost"`
	DiscountAmount  float64         `json:"discountAmount" db:"discount_amount"`
	TotalAmount     float64         `json:"totalAmount" db:"total_amount"`
	Currency        string          `json:"currency" db:"currency"`
	ShippingAddress ShippingAddress `json:"shippingAddress" db:"shipping_address"`
	BillingAddress  ShippingAddress `json:"billingAddress" db:"billing_address"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem is an immutable snapshot of a product at purchase time.
// Later product edits must not retroactively alter historical orders.
type OrderItem struct {
	ID          uuid.UUID  `json:"-" db:"id"`
	OrderID     uuid.UUID  `json:"-" db:"order_id"`
	ProductID   uuid.UUID  `json:"productId" db:"product_id"`
	VariantID   *uuid.UUID `json:"variantId,omitempty" db:"variant_id"`
	ProductName string     `json:"productName" db:"product_name"`
	ProductSKU  *string    `json:"productSku,omitempty" db:"product_sku"`
	Price       float64    `json:"price" db:"price"`
	Quantity    int        `json:"quantity" db:"quantity"`
	Subtotal    float64    `json:"subtotal" db:"subtotal"`
}

// OrderDetail bundles an order with its items, payment and delivery
// for the order detail view.
type OrderDetail struct {
	Order    Order       `json:"order"`
	Items    []OrderItem `json:"items"`
	Payment  *Payment    `json:"payment,omitempty"`
	Delivery *Delivery   `json:"delivery,omitempty"`
}
