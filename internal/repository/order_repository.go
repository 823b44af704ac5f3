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

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `id, order_number, buyer_id, seller_id, status, subtotal, tax_amount,
		shipping_cost, discount_amount, total_amount, currency,
		shipping_address, billing_address, created_at, updated_at`

// InsertOrder inserts a new order row.
func (r *orderRepository) InsertOrder(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.OrderNumber,
		order.BuyerID,
		order.SellerID,
		order.Status,
		order.Subtotal,
		order.TaxAmount,
		order.ShippingCost,
		order.DiscountAmount,
		order.TotalAmount,
		order.Currency,
		order.ShippingAddress,
		order.BillingAddress,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Str("order_number", order.OrderNumber).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Msg("order inserted")

	return nil
}

// InsertOrderItems inserts the order's item snapshots in one batch.
func (r *orderRepository) InsertOrderItems(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, product_id, variant_id, product_name,
			product_sku, price, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.VariantID,
			item.ProductName,
			item.ProductSKU,
			item.Price,
			item.Quantity,
			item.Subtotal,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", items[i].OrderID.String()).
				Str("product_id", items[i].ProductID.String()).
				Msg("failed to insert order item")
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items inserted")

	return nil
}

// InsertPayment inserts the pending payment stub for an order.
func (r *orderRepository) InsertPayment(ctx context.Context, payment *model.Payment) error {
	query := `
		INSERT INTO payments (id, order_id, payment_method, status, amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.PaymentMethod,
		payment.Status,
		payment.Amount,
		payment.Currency,
		payment.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", payment.OrderID.String()).
			Msg("failed to insert payment")
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// InsertDelivery inserts the pending delivery stub for an order.
func (r *orderRepository) InsertDelivery(ctx context.Context, delivery *model.Delivery) error {
	query := `
		INSERT INTO deliveries (id, order_id, delivery_method, status, delivery_address,
			recipient_name, recipient_phone, delivery_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		delivery.ID,
		delivery.OrderID,
		delivery.DeliveryMethod,
		delivery.Status,
		delivery.DeliveryAddress,
		delivery.RecipientName,
		delivery.RecipientPhone,
		delivery.DeliveryNotes,
		delivery.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", delivery.OrderID.String()).
			Msg("failed to insert delivery")
		return fmt.Errorf("failed to insert delivery: %w", err)
	}

	return nil
}

// GetDetail retrieves an order with its items, payment and delivery.
func (r *orderRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.OrderDetail, error) {
	orderQuery := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.BuyerID,
		&order.SellerID,
		&order.Status,
		&order.Subtotal,
		&order.TaxAmount,
		&order.ShippingCost,
		&order.DiscountAmount,
		&order.TotalAmount,
		&order.Currency,
		&order.ShippingAddress,
		&order.BillingAddress,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, variant_id, product_name, product_sku,
		       price, quantity, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.VariantID,
			&item.ProductName,
			&item.ProductSKU,
			&item.Price,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	detail := &model.OrderDetail{Order: order, Items: items}

	paymentQuery := `
		SELECT id, order_id, payment_method, status, amount, currency, created_at
		FROM payments
		WHERE order_id = $1
	`

	var payment model.Payment
	err = r.pool.QueryRow(ctx, paymentQuery, id).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.PaymentMethod,
		&payment.Status,
		&payment.Amount,
		&payment.Currency,
		&payment.CreatedAt,
	)
	switch err {
	case nil:
		detail.Payment = &payment
	case pgx.ErrNoRows:
		// Orphaned orders from a partial fan-out failure have no
		// payment row.
	default:
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query payment")
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}

	deliveryQuery := `
		SELECT id, order_id, delivery_method, status, delivery_address,
		       recipient_name, recipient_phone, delivery_notes, created_at
		FROM deliveries
		WHERE order_id = $1
	`

	var delivery model.Delivery
	err = r.pool.QueryRow(ctx, deliveryQuery, id).Scan(
		&delivery.ID,
		&delivery.OrderID,
		&delivery.DeliveryMethod,
		&delivery.Status,
		&delivery.DeliveryAddress,
		&delivery.RecipientName,
		&delivery.RecipientPhone,
		&delivery.DeliveryNotes,
		&delivery.CreatedAt,
	)
	switch err {
	case nil:
		detail.Delivery = &delivery
	case pgx.ErrNoRows:
	default:
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query delivery")
		return nil, fmt.Errorf("failed to query delivery: %w", err)
	}

	return detail, nil
}

// ListByBuyer retrieves the buyer's orders, newest first.
func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]model.Order, error) {
	return r.list(ctx, "buyer_id", buyerID, limit, offset)
}

// ListBySeller retrieves the seller's orders, newest first.
func (r *orderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]model.Order, error) {
	return r.list(ctx, "seller_id", sellerID, limit, offset)
}

func (r *orderRepository) list(ctx context.Context, column string, id uuid.UUID, limit, offset int) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE ` + column + ` = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, id, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Str(column, id.String()).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var order model.Order
		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.BuyerID,
			&order.SellerID,
			&order.Status,
			&order.Subtotal,
			&order.TaxAmount,
			&order.ShippingCost,
			&order.DiscountAmount,
			&order.TotalAmount,
			&order.Currency,
			&order.ShippingAddress,
			&order.BillingAddress,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
