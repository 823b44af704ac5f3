package service

import (
	"context"
	"io"

	"ebuney/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for the product catalogue.
type ProductService interface {
	// GetAll retrieves active products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// AttachImage uploads a product image and records its public URL.
	// Only the owning seller (or an admin) may attach images.
	AttachImage(ctx context.Context, actorID uuid.UUID, actorRole model.Role, productID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

// CartService defines operations for the buyer's cart.
type CartService interface {
	// Get retrieves the buyer's cart with joined lines, creating an
	// empty cart when none exists yet.
	Get(ctx context.Context, userID uuid.UUID) (*model.CartSnapshot, error)

	// AddItem puts a product into the cart, incrementing quantity on
	// repeat adds.
	AddItem(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID, quantity int) (*model.CartItem, error)

	// UpdateItem sets the quantity of an existing cart line.
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) error

	// RemoveItem deletes a cart line.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
}

// OrderService defines the read side of the order ledger. Orders are
// only ever created by the checkout workflow.
type OrderService interface {
	// ListForBuyer retrieves the buyer's own orders.
	ListForBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]model.Order, error)

	// ListForSeller retrieves orders addressed to the seller.
	ListForSeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]model.Order, error)

	// GetDetail retrieves one order with items, payment and delivery.
	// Only the buyer, the seller party to the order, or an admin may
	// read it. Returns nil when the order does not exist.
	GetDetail(ctx context.Context, actorID uuid.UUID, actorRole model.Role, orderID uuid.UUID) (*model.OrderDetail, error)
}
