package service

import (
	"context"
	"fmt"

	"ebuney/internal/model"
	"ebuney/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements the read side of OrderService.
type orderService struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// ListForBuyer retrieves the buyer's own orders.
func (s *orderService) ListForBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]model.Order, error) {
	limit, offset = clampPage(limit, offset)

	orders, err := s.repo.ListByBuyer(ctx, buyerID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("buyer_id", buyerID.String()).Msg("failed to list buyer orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// ListForSeller retrieves orders addressed to the seller.
func (s *orderService) ListForSeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]model.Order, error) {
	limit, offset = clampPage(limit, offset)

	orders, err := s.repo.ListBySeller(ctx, sellerID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("seller_id", sellerID.String()).Msg("failed to list seller orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// GetDetail retrieves one order with items, payment and delivery.
func (s *orderService) GetDetail(ctx context.Context, actorID uuid.UUID, actorRole model.Role, orderID uuid.UUID) (*model.OrderDetail, error) {
	detail, err := s.repo.GetDetail(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if detail == nil {
		return nil, nil
	}

	if detail.Order.BuyerID != actorID && detail.Order.SellerID != actorID && actorRole != model.RoleAdmin {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("actor_id", actorID.String()).
			Msg("order detail denied, actor is not a party to the order")
		return nil, model.ErrForbidden
	}

	return detail, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
