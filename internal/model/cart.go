package model

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a buyer's single active cart.
type Cart struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CartItem is a line in a cart. Rows live from add-to-cart until
// manual removal or a fully successful checkout.
type CartItem struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	CartID    uuid.UUID  `json:"cartId" db:"cart_id"`
	ProductID uuid.UUID  `json:"productId" db:"product_id"`
	VariantID *uuid.UUID `json:"variantId,omitempty" db:"variant_id"`
	Quantity  int        `json:"quantity" db:"quantity"`
}

// CartLine is a cart item joined with the referenced product's current
// seller, name, sku, price and currency. SellerID is uuid.Nil when the
// product row no longer carries a seller reference.
type CartLine struct {
	ItemID      uuid.UUID  `json:"itemId"`
	ProductID   uuid.UUID  `json:"productId"`
	VariantID   *uuid.UUID `json:"variantId,omitempty"`
	SellerID    uuid.UUID  `json:"sellerId"`
	ProductName string     `json:"productName"`
	ProductSKU  *string    `json:"productSku,omitempty"`
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	Quantity    int        `json:"quantity"`
}

// LineTotal returns price multiplied by quantity for this line.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartSnapshot is the buyer's cart with all joined lines, as read at
// the start of checkout.
type CartSnapshot struct {
	CartID uuid.UUID  `json:"cartId"`
	Lines  []CartLine `json:"lines"`
}

// Subtotal sums line totals across the whole cart.
func (s CartSnapshot) Subtotal() float64 {
	var sum float64
	for _, l := range s.Lines {
		sum += l.LineTotal()
	}
	return sum
}
