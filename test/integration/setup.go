package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the marketplace schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS user_profiles (
			id UUID PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			full_name VARCHAR(255),
			phone VARCHAR(50),
			role VARCHAR(20) NOT NULL DEFAULT 'buyer',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			seller_id UUID NOT NULL REFERENCES user_profiles(id),
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) NOT NULL,
			sku VARCHAR(100),
			price DECIMAL(12, 2) NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'ZMW',
			image_url TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS carts (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL UNIQUE REFERENCES user_profiles(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS cart_items (
			id UUID PRIMARY KEY,
			cart_id UUID NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
			product_id UUID NOT NULL REFERENCES products(id),
			variant_id UUID,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (cart_id, product_id)
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			order_number VARCHAR(30) NOT NULL UNIQUE,
			buyer_id UUID NOT NULL REFERENCES user_profiles(id),
			seller_id UUID NOT NULL REFERENCES user_profiles(id),
			status VARCHAR(20) NOT NULL,
			subtotal DECIMAL(12, 2) NOT NULL,
			tax_amount DECIMAL(12, 2) NOT NULL DEFAULT 0,
			shipping_cost DECIMAL(12, 2) NOT NULL DEFAULT 0,
			discount_amount DECIMAL(12, 2) NOT NULL DEFAULT 0,
			total_amount DECIMAL(12, 2) NOT NULL,
			currency VARCHAR(3) NOT NULL,
			shipping_address JSONB NOT NULL,
			billing_address JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id UUID NOT NULL,
			variant_id UUID,
			product_name VARCHAR(255) NOT NULL,
			product_sku VARCHAR(100),
			price DECIMAL(12, 2) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			subtotal DECIMAL(12, 2) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			payment_method VARCHAR(30) NOT NULL,
			status VARCHAR(20) NOT NULL,
			amount DECIMAL(12, 2) NOT NULL,
			currency VARCHAR(3) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS deliveries (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			delivery_method VARCHAR(30) NOT NULL,
			status VARCHAR(20) NOT NULL,
			delivery_address JSONB NOT NULL,
			recipient_name VARCHAR(255) NOT NULL,
			recipient_phone VARCHAR(50) NOT NULL,
			delivery_notes TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_products_seller_id ON products(seller_id);
		CREATE INDEX IF NOT EXISTS idx_cart_items_cart_id ON cart_items(cart_id);
		CREATE INDEX IF NOT EXISTS idx_orders_buyer_id ON orders(buyer_id);
		CREATE INDEX IF NOT EXISTS idx_orders_seller_id ON orders(seller_id);
		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedUser inserts a user profile and returns its ID.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO user_profiles (id, email, full_name, phone, role) VALUES ($1, $2, $3, $4, $5)",
		id, fmt.Sprintf("%s@example.com", id), "Test User", "+260 971 000 000", role,
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return id
}

// SeedProduct inserts an active product for the seller and returns its ID.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, sellerID uuid.UUID, name string, price float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, seller_id, name, slug, price, currency, is_active)
		 VALUES ($1, $2, $3, $4, $5, 'ZMW', TRUE)`,
		id, sellerID, name, fmt.Sprintf("%s-%s", name, id), price,
	)
	if err != nil {
		t.Fatalf("failed to seed product %s: %v", name, err)
	}
	return id
}

// nowUTC returns the current time truncated so timestamps survive a
// database round trip unchanged.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// CleanupDB removes all data from the marketplace tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"deliveries", "payments", "order_items", "orders",
		"cart_items", "carts", "products", "user_profiles",
	}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
