package integration

import (
	"context"
	"testing"

	"ebuney/internal/model"
	"ebuney/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(db.Pool, logger)

	sellerID := SeedUser(t, db.Pool, "seller")
	phoneID := SeedProduct(t, db.Pool, sellerID, "Phone", 100)
	SeedProduct(t, db.Pool, sellerID, "Charger", 50)

	t.Run("GetAll returns active products", func(t *testing.T) {
		products, err := repo.GetAll(ctx, 20, 0)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("GetByID returns the product", func(t *testing.T) {
		product, err := repo.GetByID(ctx, phoneID)
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Phone", product.Name)
		assert.Equal(t, sellerID, product.SellerID)
		assert.InDelta(t, 100.0, product.Price, 1e-9)
	})

	t.Run("GetByID returns nil for unknown product", func(t *testing.T) {
		product, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("SetImageURL records the URL", func(t *testing.T) {
		url := "https://bucket.s3.region.amazonaws.com/products/phone.png"
		require.NoError(t, repo.SetImageURL(ctx, phoneID, url))

		product, err := repo.GetByID(ctx, phoneID)
		require.NoError(t, err)
		require.NotNil(t, product.ImageURL)
		assert.Equal(t, url, *product.ImageURL)
	})

	t.Run("SetImageURL fails for unknown product", func(t *testing.T) {
		err := repo.SetImageURL(ctx, uuid.New(), "https://example.com/x.png")
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestCartRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()
	repo := repository.NewCartRepository(db.Pool, logger)

	buyerID := SeedUser(t, db.Pool, "buyer")
	sellerID := SeedUser(t, db.Pool, "seller")
	phoneID := SeedProduct(t, db.Pool, sellerID, "Phone", 100)
	chargerID := SeedProduct(t, db.Pool, sellerID, "Charger", 50)

	t.Run("GetByUserID returns nil before a cart exists", func(t *testing.T) {
		cart, err := repo.GetByUserID(ctx, buyerID)
		require.NoError(t, err)
		assert.Nil(t, cart)
	})

	t.Run("GetOrCreate is idempotent per user", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, buyerID)
		require.NoError(t, err)
		second, err := repo.GetOrCreate(ctx, buyerID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("AddItem increments quantity on repeat adds", func(t *testing.T) {
		cart, err := repo.GetOrCreate(ctx, buyerID)
		require.NoError(t, err)

		item, err := repo.AddItem(ctx, cart.ID, phoneID, nil, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)

		item, err = repo.AddItem(ctx, cart.ID, phoneID, nil, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("GetLines joins product data", func(t *testing.T) {
		cart, err := repo.GetOrCreate(ctx, buyerID)
		require.NoError(t, err)

		_, err = repo.AddItem(ctx, cart.ID, chargerID, nil, 1)
		require.NoError(t, err)

		lines, err := repo.GetLines(ctx, cart.ID)
		require.NoError(t, err)
		require.Len(t, lines, 2)

		byName := make(map[string]model.CartLine)
		for _, l := range lines {
			byName[l.ProductName] = l
		}
		phone := byName["Phone"]
		assert.Equal(t, sellerID, phone.SellerID)
		assert.InDelta(t, 100.0, phone.Price, 1e-9)
		assert.Equal(t, 3, phone.Quantity)
	})

	t.Run("UpdateItemQuantity and RemoveItem", func(t *testing.T) {
		cart, err := repo.GetOrCreate(ctx, buyerID)
		require.NoError(t, err)
		lines, err := repo.GetLines(ctx, cart.ID)
		require.NoError(t, err)
		require.NotEmpty(t, lines)

		require.NoError(t, repo.UpdateItemQuantity(ctx, cart.ID, lines[0].ItemID, 5))
		require.NoError(t, repo.RemoveItem(ctx, cart.ID, lines[0].ItemID))

		assert.ErrorIs(t, repo.UpdateItemQuantity(ctx, cart.ID, lines[0].ItemID, 1), model.ErrCartItemNotFound)
		assert.ErrorIs(t, repo.RemoveItem(ctx, cart.ID, lines[0].ItemID), model.ErrCartItemNotFound)
	})

	t.Run("ClearItems empties the cart", func(t *testing.T) {
		cart, err := repo.GetOrCreate(ctx, buyerID)
		require.NoError(t, err)

		require.NoError(t, repo.ClearItems(ctx, cart.ID))

		lines, err := repo.GetLines(ctx, cart.ID)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestUserRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(db.Pool, zerolog.Nop())

	buyerID := SeedUser(t, db.Pool, "buyer")

	profile, err := repo.GetByID(ctx, buyerID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, model.RoleBuyer, profile.Role)
	assert.Equal(t, "Test User", profile.FullName)

	missing, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(db.Pool, logger)

	buyerID := SeedUser(t, db.Pool, "buyer")
	sellerID := SeedUser(t, db.Pool, "seller")
	productID := SeedProduct(t, db.Pool, sellerID, "Phone", 100)

	address := model.ShippingAddress{
		FullName:     "Chanda Mwila",
		Phone:        "+260 971 234 567",
		AddressLine1: "12 Independence Ave",
		City:         "Lusaka",
		Province:     "Lusaka",
		Country:      "Zambia",
	}

	order := &model.Order{
		ID:              uuid.New(),
		OrderNumber:     "ORD-20260901-0000AB12",
		BuyerID:         buyerID,
		SellerID:        sellerID,
		Status:          model.OrderStatusPending,
		Subtotal:        200,
		TotalAmount:     200,
		Currency:        "ZMW",
		ShippingAddress: address,
		BillingAddress:  address,
		CreatedAt:       nowUTC(),
		UpdatedAt:       nowUTC(),
	}

	t.Run("full write sequence round-trips", func(t *testing.T) {
		require.NoError(t, repo.InsertOrder(ctx, order))
		require.NoError(t, repo.InsertOrderItems(ctx, []model.OrderItem{{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   productID,
			ProductName: "Phone",
			Price:       100,
			Quantity:    2,
			Subtotal:    200,
		}}))
		require.NoError(t, repo.InsertPayment(ctx, &model.Payment{
			ID:            uuid.New(),
			OrderID:       order.ID,
			PaymentMethod: model.PaymentMobileMoneyMTN,
			Status:        model.PaymentStatusPending,
			Amount:        200,
			Currency:      "ZMW",
			CreatedAt:     nowUTC(),
		}))
		require.NoError(t, repo.InsertDelivery(ctx, &model.Delivery{
			ID:              uuid.New(),
			OrderID:         order.ID,
			DeliveryMethod:  model.DeliveryPlatformCourier,
			Status:          model.DeliveryStatusPending,
			DeliveryAddress: address,
			RecipientName:   address.FullName,
			RecipientPhone:  address.Phone,
			CreatedAt:       nowUTC(),
		}))

		detail, err := repo.GetDetail(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, order.OrderNumber, detail.Order.OrderNumber)
		assert.Equal(t, "Lusaka", detail.Order.ShippingAddress.City)
		require.Len(t, detail.Items, 1)
		require.NotNil(t, detail.Payment)
		assert.InDelta(t, 200.0, detail.Payment.Amount, 1e-9)
		require.NotNil(t, detail.Delivery)
		assert.Equal(t, address.FullName, detail.Delivery.RecipientName)
	})

	t.Run("duplicate order number is rejected", func(t *testing.T) {
		dup := *order
		dup.ID = uuid.New()
		assert.Error(t, repo.InsertOrder(ctx, &dup))
	})

	t.Run("orphaned order reads back without payment or delivery", func(t *testing.T) {
		orphan := *order
		orphan.ID = uuid.New()
		orphan.OrderNumber = "ORD-20260901-0000CD34"
		require.NoError(t, repo.InsertOrder(ctx, &orphan))

		detail, err := repo.GetDetail(ctx, orphan.ID)
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Empty(t, detail.Items)
		assert.Nil(t, detail.Payment)
		assert.Nil(t, detail.Delivery)
	})

	t.Run("lists filter by party", func(t *testing.T) {
		buyerOrders, err := repo.ListByBuyer(ctx, buyerID, 20, 0)
		require.NoError(t, err)
		assert.Len(t, buyerOrders, 2)

		sellerOrders, err := repo.ListBySeller(ctx, sellerID, 20, 0)
		require.NoError(t, err)
		assert.Len(t, sellerOrders, 2)

		none, err := repo.ListByBuyer(ctx, uuid.New(), 20, 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("GetDetail returns nil for unknown order", func(t *testing.T) {
		detail, err := repo.GetDetail(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, detail)
	})
}
