package service

import (
	"context"
	"fmt"
	"io"

	"ebuney/internal/model"
	"ebuney/internal/repository"
	"ebuney/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	images storage.ImageStore
	logger zerolog.Logger
}

// NewProductService creates a new product service. The image store may
// be nil when object storage is disabled; AttachImage then fails with
// a plain error.
func NewProductService(repo repository.ProductRepository, images storage.ImageStore, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		images: images,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves active products with pagination.
func (s *productService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// AttachImage uploads a product image and records its public URL.
func (s *productService) AttachImage(ctx context.Context, actorID uuid.UUID, actorRole model.Role, productID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if s.images == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return "", fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return "", model.ErrProductNotFound
	}
	if product.SellerID != actorID && actorRole != model.RoleAdmin {
		s.logger.Warn().
			Str("product_id", productID.String()).
			Str("actor_id", actorID.String()).
			Msg("image upload denied, actor does not own product")
		return "", model.ErrForbidden
	}

	url, err := s.images.Upload(ctx, filename, contentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to upload product image: %w", err)
	}

	if err := s.repo.SetImageURL(ctx, productID, url); err != nil {
		return "", fmt.Errorf("failed to record product image: %w", err)
	}

	s.logger.Info().
		Str("product_id", productID.String()).
		Str("url", url).
		Msg("product image attached")

	return url, nil
}
