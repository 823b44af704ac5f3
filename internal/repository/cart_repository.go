package repository

import (
	"context"
	"fmt"

	"ebuney/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// GetByUserID retrieves the buyer's single active cart.
func (r *cartRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	query := `
		SELECT id, user_id, created_at
		FROM carts
		WHERE user_id = $1
	`

	var cart model.Cart
	err := r.pool.QueryRow(ctx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("user_id", userID.String()).Msg("no cart for user")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	return &cart, nil
}

// GetOrCreate retrieves the buyer's cart, creating an empty one when
// none exists. The insert is idempotent under concurrent calls via the
// unique constraint on user_id.
func (r *cartRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	query := `
		INSERT INTO carts (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, created_at
	`

	var cart model.Cart
	err := r.pool.QueryRow(ctx, query, uuid.New(), userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get or create cart")
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	return &cart, nil
}

// GetLines retrieves the cart's items joined with the referenced
// product. The join is left outer so lines pointing at removed
// products still come back; such lines carry a nil seller and are
// excluded later by the seller partitioner.
func (r *cartRepository) GetLines(ctx context.Context, cartID uuid.UUID) ([]model.CartLine, error) {
	query := `
		SELECT ci.id, ci.product_id, ci.variant_id, p.seller_id,
		       COALESCE(p.name, ''), p.sku, COALESCE(p.price, 0),
		       COALESCE(p.currency, $2), ci.quantity
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at, ci.id
	`

	rows, err := r.pool.Query(ctx, query, cartID, model.DefaultCurrency)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to query cart lines")
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var line model.CartLine
		var sellerID *uuid.UUID
		err := rows.Scan(
			&line.ItemID,
			&line.ProductID,
			&line.VariantID,
			&sellerID,
			&line.ProductName,
			&line.ProductSKU,
			&line.Price,
			&line.Currency,
			&line.Quantity,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart line row")
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		if sellerID != nil {
			line.SellerID = *sellerID
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart line rows")
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}

// AddItem adds a product to the cart, incrementing the quantity when
// the product is already present.
func (r *cartRepository) AddItem(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID, quantity int) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, variant_id, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cart_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, cart_id, product_id, variant_id, quantity
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, uuid.New(), cartID, productID, variantID, quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.VariantID,
		&item.Quantity,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", productID.String()).
			Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return &item, nil
}

// UpdateItemQuantity sets the quantity of an existing line.
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE cart_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query, cartID, itemID, quantity)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to update cart item")
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem deletes a single line from the cart.
func (r *cartRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	query := `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query, cartID, itemID)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCartItemNotFound
	}

	return nil
}

// ClearItems deletes every item row under the cart.
func (r *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	query := `
		DELETE FROM cart_items
		WHERE cart_id = $1
	`

	tag, err := r.pool.Exec(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to clear cart items")
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	r.logger.Debug().
		Str("cart_id", cartID.String()).
		Int64("deleted", tag.RowsAffected()).
		Msg("cart items cleared")

	return nil
}
