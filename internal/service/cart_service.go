package service

import (
	"context"
	"fmt"

	"ebuney/internal/model"
	"ebuney/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the buyer's cart with joined lines, creating an empty
// cart when none exists yet.
func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*model.CartSnapshot, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	lines, err := s.cartRepo.GetLines(ctx, cart.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("failed to get cart lines")
		return nil, fmt.Errorf("failed to get cart lines: %w", err)
	}

	return &model.CartSnapshot{CartID: cart.ID, Lines: lines}, nil
}

// AddItem puts a product into the cart.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to look up product")
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil || !product.IsActive {
		return nil, model.ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	item, err := s.cartRepo.AddItem(ctx, cart.ID, productID, variantID, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Debug().
		Str("cart_id", cart.ID.String()).
		Str("product_id", productID.String()).
		Int("quantity", item.Quantity).
		Msg("cart item added")

	return item, nil
}

// UpdateItem sets the quantity of an existing cart line.
func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return model.ErrCartItemNotFound
	}

	return s.cartRepo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity)
}

// RemoveItem deletes a cart line.
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return model.ErrCartItemNotFound
	}

	return s.cartRepo.RemoveItem(ctx, cart.ID, itemID)
}
