package repository

import (
	"context"

	"ebuney/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetAll retrieves active products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when
	// no row exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// SetImageURL records the public URL of an uploaded product image.
	SetImageURL(ctx context.Context, id uuid.UUID, url string) error
}

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetByUserID retrieves the buyer's single active cart. Returns
	// nil when the buyer has no cart yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// GetOrCreate retrieves the buyer's cart, creating an empty one
	// when none exists.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// GetLines retrieves the cart's items joined with the referenced
	// product's current seller, name, sku, price and currency.
	GetLines(ctx context.Context, cartID uuid.UUID) ([]model.CartLine, error)

	// AddItem adds a product to the cart, incrementing the quantity
	// when the product is already present.
	AddItem(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID, quantity int) (*model.CartItem, error)

	// UpdateItemQuantity sets the quantity of an existing line.
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error

	// RemoveItem deletes a single line from the cart.
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// ClearItems deletes every item row under the cart. Invoked only
	// after all seller partitions of a checkout succeeded.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}

// OrderRepository defines the interface for the order ledger. The
// fan-out writes are individual inserts rather than one transaction:
// a partition that fails partway intentionally leaves the rows it
// already wrote in place.
type OrderRepository interface {
	// InsertOrder inserts a new order row.
	InsertOrder(ctx context.Context, order *model.Order) error

	// InsertOrderItems inserts the order's item snapshots.
	InsertOrderItems(ctx context.Context, items []model.OrderItem) error

	// InsertPayment inserts the pending payment stub for an order.
	InsertPayment(ctx context.Context, payment *model.Payment) error

	// InsertDelivery inserts the pending delivery stub for an order.
	InsertDelivery(ctx context.Context, delivery *model.Delivery) error

	// GetDetail retrieves an order with its items, payment and
	// delivery. Returns nil when no row exists.
	GetDetail(ctx context.Context, id uuid.UUID) (*model.OrderDetail, error)

	// ListByBuyer retrieves the buyer's orders, newest first.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]model.Order, error)

	// ListBySeller retrieves the seller's orders, newest first.
	ListBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]model.Order, error)
}

// UserRepository defines the interface for profile reads.
type UserRepository interface {
	// GetByID retrieves a user profile. Returns nil when no row exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
}
