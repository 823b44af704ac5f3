package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the platform currency used when the product row
// carries none.
const DefaultCurrency = "ZMW"

// Product represents a listing in the marketplace catalogue. The
// checkout workflow treats it as a read-only snapshot of price, name,
// sku and seller at order time.
type Product struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SellerID  uuid.UUID `json:"sellerId" db:"seller_id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	SKU       *string   `json:"sku,omitempty" db:"sku"`
	Price     float64   `json:"price" db:"price"`
	Currency  string    `json:"currency" db:"currency"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
