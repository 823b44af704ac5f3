package service

import (
	"context"
	"errors"
	"testing"

	"ebuney/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_Get(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	carts := new(MockCartRepository)
	svc := NewCartService(carts, new(MockProductRepository), zerolog.Nop())

	lines := []model.CartLine{
		{ItemID: uuid.New(), ProductID: uuid.New(), SellerID: uuid.New(), ProductName: "Phone", Price: 100, Quantity: 2},
	}
	carts.On("GetOrCreate", ctx, userID).Return(&model.Cart{ID: cartID, UserID: userID}, nil)
	carts.On("GetLines", ctx, cartID).Return(lines, nil)

	snapshot, err := svc.Get(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, cartID, snapshot.CartID)
	require.Len(t, snapshot.Lines, 1)
	assert.InDelta(t, 200.0, snapshot.Subtotal(), 1e-9)
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	t.Run("adds active product", func(t *testing.T) {
		carts := new(MockCartRepository)
		products := new(MockProductRepository)
		svc := NewCartService(carts, products, zerolog.Nop())

		products.On("GetByID", ctx, productID).Return(&model.Product{ID: productID, IsActive: true}, nil)
		carts.On("GetOrCreate", ctx, userID).Return(&model.Cart{ID: cartID, UserID: userID}, nil)
		carts.On("AddItem", ctx, cartID, productID, (*uuid.UUID)(nil), 2).
			Return(&model.CartItem{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 2}, nil)

		item, err := svc.AddItem(ctx, userID, productID, nil, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		carts := new(MockCartRepository)
		products := new(MockProductRepository)
		svc := NewCartService(carts, products, zerolog.Nop())

		_, err := svc.AddItem(ctx, userID, productID, nil, 0)

		assert.ErrorIs(t, err, model.ErrInvalidQuantity)
		products.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		carts := new(MockCartRepository)
		products := new(MockProductRepository)
		svc := NewCartService(carts, products, zerolog.Nop())

		products.On("GetByID", ctx, productID).Return(nil, nil)

		_, err := svc.AddItem(ctx, userID, productID, nil, 1)

		assert.ErrorIs(t, err, model.ErrProductNotFound)
		carts.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		carts := new(MockCartRepository)
		products := new(MockProductRepository)
		svc := NewCartService(carts, products, zerolog.Nop())

		products.On("GetByID", ctx, productID).Return(&model.Product{ID: productID, IsActive: false}, nil)

		_, err := svc.AddItem(ctx, userID, productID, nil, 1)

		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	t.Run("updates quantity", func(t *testing.T) {
		carts := new(MockCartRepository)
		svc := NewCartService(carts, new(MockProductRepository), zerolog.Nop())

		carts.On("GetByUserID", ctx, userID).Return(&model.Cart{ID: cartID, UserID: userID}, nil)
		carts.On("UpdateItemQuantity", ctx, cartID, itemID, 5).Return(nil)

		require.NoError(t, svc.UpdateItem(ctx, userID, itemID, 5))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		carts := new(MockCartRepository)
		svc := NewCartService(carts, new(MockProductRepository), zerolog.Nop())

		assert.ErrorIs(t, svc.UpdateItem(ctx, userID, itemID, -1), model.ErrInvalidQuantity)
	})

	t.Run("no cart means no item", func(t *testing.T) {
		carts := new(MockCartRepository)
		svc := NewCartService(carts, new(MockProductRepository), zerolog.Nop())

		carts.On("GetByUserID", ctx, userID).Return(nil, nil)

		assert.ErrorIs(t, svc.UpdateItem(ctx, userID, itemID, 1), model.ErrCartItemNotFound)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	t.Run("removes line", func(t *testing.T) {
		carts := new(MockCartRepository)
		svc := NewCartService(carts, new(MockProductRepository), zerolog.Nop())

		carts.On("GetByUserID", ctx, userID).Return(&model.Cart{ID: cartID, UserID: userID}, nil)
		carts.On("RemoveItem", ctx, cartID, itemID).Return(nil)

		require.NoError(t, svc.RemoveItem(ctx, userID, itemID))
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		carts := new(MockCartRepository)
		svc := NewCartService(carts, new(MockProductRepository), zerolog.Nop())

		carts.On("GetByUserID", ctx, userID).Return(nil, errors.New("connection reset"))

		assert.Error(t, svc.RemoveItem(ctx, userID, itemID))
	})
}
