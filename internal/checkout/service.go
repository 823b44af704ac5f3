package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ebuney/internal/model"
	"ebuney/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Shipping, tax and discount are fixed at zero platform-wide for now.
// Documented policy, not a bug.
const (
	shippingCost   = 0.0
	taxAmount      = 0.0
	discountAmount = 0.0
)

// Service is the checkout order-splitting workflow: it reads the
// buyer's cart, partitions it by seller, fans one order out per
// partition, and clears the cart only when every partition succeeded.
type Service interface {
	PlaceOrder(ctx context.Context, buyerID uuid.UUID, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

type service struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	guard     AttemptGuard
	logger    zerolog.Logger

	now       func() time.Time
	numberFor func(time.Time) string
}

// NewService creates the checkout service.
func NewService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	guard AttemptGuard,
	logger zerolog.Logger,
) Service {
	return &service{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		guard:     guard,
		logger:    logger.With().Str("service", "checkout").Logger(),
		now:       time.Now,
		numberFor: NewOrderNumber,
	}
}

// PlaceOrder runs the whole workflow for one "place order" action.
//
// Seller partitions are written in parallel; each partition's internal
// writes (order, items, payment, delivery) are sequential. Partitions
// write disjoint rows, so there is no cross-partition coordination and
// a failed partition does not cancel its siblings. A partition that
// fails after its order row was inserted leaves the partial rows in
// place; no compensating rollback is performed.
func (s *service) PlaceOrder(ctx context.Context, buyerID uuid.UUID, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	claimed, err := s.guard.Begin(ctx, buyerID, req.AttemptID)
	if err != nil {
		return nil, model.ErrDataUnavailable
	}
	if !claimed {
		return nil, model.ErrDuplicateCheckout
	}

	snapshot, err := s.readCart(ctx, buyerID)
	if err != nil {
		// Nothing was written yet, so the attempt id stays usable.
		s.releaseAttempt(ctx, buyerID, req.AttemptID)
		return nil, err
	}

	partitions := PartitionBySeller(snapshot.Lines)
	if len(partitions) == 0 {
		s.releaseAttempt(ctx, buyerID, req.AttemptID)
		return nil, model.ErrEmptyCart
	}

	address := req.ShippingAddress
	if address.Country == "" {
		address.Country = model.DefaultCountry
	}

	orders := make([]*model.Order, len(partitions))
	errs := make([]error, len(partitions))

	var g errgroup.Group
	for i, p := range partitions {
		g.Go(func() error {
			orders[i], errs[i] = s.writePartition(ctx, buyerID, p, req.PaymentMethod, address)
			return errs[i]
		})
	}
	// The first error is reported through errs as well; Wait is only
	// used as a barrier so every partition completes independently.
	_ = g.Wait()

	created := make([]model.Order, 0, len(partitions))
	var firstErr error
	var partial *model.PartialOrderError
	for i, e := range errs {
		if e == nil {
			created = append(created, *orders[i])
			continue
		}
		if firstErr == nil {
			firstErr = e
		}
		var pe *model.PartialOrderError
		if partial == nil && errors.As(e, &pe) {
			partial = pe
		}
	}

	if firstErr != nil {
		// Some seller partition failed: skip cart clearing so the
		// buyer can retry without re-adding items. The attempt id is
		// kept claimed, because order rows may already exist.
		s.logger.Error().
			Err(firstErr).
			Str("buyer_id", buyerID.String()).
			Int("partitions", len(partitions)).
			Int("orders_created", len(created)).
			Msg("checkout fan-out failed")
		if partial != nil {
			return nil, partial
		}
		return nil, fmt.Errorf("checkout failed: %w", firstErr)
	}

	if err := s.cartRepo.ClearItems(ctx, snapshot.CartID); err != nil {
		// Orders exist and are consistent; a stale cart is the lesser
		// problem, so surface success and let the buyer clear manually.
		s.logger.Error().
			Err(err).
			Str("cart_id", snapshot.CartID.String()).
			Msg("failed to clear cart after successful checkout")
	}

	s.logger.Info().
		Str("buyer_id", buyerID.String()).
		Int("order_count", len(created)).
		Msg("checkout completed")

	return &model.CheckoutResponse{Orders: created}, nil
}

// validateRequest fails fast on structural problems before any store
// access happens.
func (s *service) validateRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return fmt.Errorf("checkout request is nil")
	}
	if req.AttemptID == "" {
		return model.NewValidationError("attempt_id")
	}
	if !req.PaymentMethod.Valid() {
		return model.ErrInvalidPaymentMethod
	}
	return req.ShippingAddress.Validate()
}

// readCart fetches the buyer's cart and joined lines. An absent cart
// or an empty one both surface as ErrEmptyCart; read failures surface
// as ErrDataUnavailable and are safe to retry.
func (s *service) readCart(ctx context.Context, buyerID uuid.UUID) (*model.CartSnapshot, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, buyerID)
	if err != nil {
		s.logger.Error().Err(err).Str("buyer_id", buyerID.String()).Msg("failed to read cart")
		return nil, model.ErrDataUnavailable
	}
	if cart == nil {
		return nil, model.ErrEmptyCart
	}

	lines, err := s.cartRepo.GetLines(ctx, cart.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("failed to read cart lines")
		return nil, model.ErrDataUnavailable
	}
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	return &model.CartSnapshot{CartID: cart.ID, Lines: lines}, nil
}

// writePartition performs one seller partition's write sequence:
// order, item snapshots, payment stub, delivery stub. Any failure
// after the order insert is reported as a PartialOrderError and the
// rows already written stay in place.
func (s *service) writePartition(
	ctx context.Context,
	buyerID uuid.UUID,
	p SellerPartition,
	method model.PaymentMethod,
	address model.ShippingAddress,
) (*model.Order, error) {
	now := s.now()
	subtotal := p.Subtotal()
	total := subtotal + shippingCost + taxAmount - discountAmount

	currency := p.Lines[0].Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}

	order := &model.Order{
		ID:              uuid.New(),
		OrderNumber:     s.numberFor(now),
		BuyerID:         buyerID,
		SellerID:        p.SellerID,
		Status:          model.OrderStatusPending,
		Subtotal:        subtotal,
		TaxAmount:       taxAmount,
		ShippingCost:    shippingCost,
		DiscountAmount:  discountAmount,
		TotalAmount:     total,
		Currency:        currency,
		ShippingAddress: address,
		BillingAddress:  address,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("seller %s: %w", p.SellerID, err)
	}

	items := make([]model.OrderItem, len(p.Lines))
	for i, line := range p.Lines {
		items[i] = model.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			VariantID:   line.VariantID,
			ProductName: line.ProductName,
			ProductSKU:  line.ProductSKU,
			Price:       line.Price,
			Quantity:    line.Quantity,
			Subtotal:    line.LineTotal(),
		}
	}

	if err := s.orderRepo.InsertOrderItems(ctx, items); err != nil {
		return nil, s.partialFailure(order, err)
	}

	payment := &model.Payment{
		ID:            uuid.New(),
		OrderID:       order.ID,
		PaymentMethod: method,
		Status:        model.PaymentStatusPending,
		Amount:        total,
		Currency:      currency,
		CreatedAt:     now,
	}
	if err := s.orderRepo.InsertPayment(ctx, payment); err != nil {
		return nil, s.partialFailure(order, err)
	}

	var notes *string
	if address.DeliveryNotes != "" {
		notes = &address.DeliveryNotes
	}
	delivery := &model.Delivery{
		ID:              uuid.New(),
		OrderID:         order.ID,
		DeliveryMethod:  model.DeliveryPlatformCourier,
		Status:          model.DeliveryStatusPending,
		DeliveryAddress: address,
		RecipientName:   address.FullName,
		RecipientPhone:  address.Phone,
		DeliveryNotes:   notes,
		CreatedAt:       now,
	}
	if err := s.orderRepo.InsertDelivery(ctx, delivery); err != nil {
		return nil, s.partialFailure(order, err)
	}

	return order, nil
}

func (s *service) partialFailure(order *model.Order, err error) error {
	s.logger.Error().
		Err(err).
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("seller_id", order.SellerID.String()).
		Msg("partition write failed after order insert, leaving partial rows in place")
	return &model.PartialOrderError{
		SellerID:    order.SellerID.String(),
		OrderNumber: order.OrderNumber,
		Err:         err,
	}
}

func (s *service) releaseAttempt(ctx context.Context, buyerID uuid.UUID, attemptID string) {
	if err := s.guard.Release(ctx, buyerID, attemptID); err != nil {
		s.logger.Warn().
			Err(err).
			Str("buyer_id", buyerID.String()).
			Str("attempt_id", attemptID).
			Msg("failed to release unused checkout attempt")
	}
}
