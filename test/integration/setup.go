package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"arena-store/internal/config"
	"arena-store/internal/database"
	"arena-store/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
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

	// Create PostgreSQL container
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

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	dbConfig := config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		// Try with connection string directly
		poolConfig, parseErr := pgxpool.ParseConfig(connStr)
		if parseErr != nil {
			t.Fatalf("failed to parse connection string: %v", parseErr)
		}
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			t.Fatalf("failed to create connection pool: %v", err)
		}
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
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

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			brand VARCHAR(100) NOT NULL DEFAULT '',
			price DECIMAL(10, 2) NOT NULL,
			original_price DECIMAL(10, 2),
			image_url TEXT NOT NULL DEFAULT '',
			images TEXT[],
			category VARCHAR(100) NOT NULL,
			subcategory VARCHAR(100),
			is_new BOOLEAN NOT NULL DEFAULT FALSE,
			inventory JSONB NOT NULL DEFAULT '{}',
			weight DECIMAL(10, 3) NOT NULL DEFAULT 0,
			height DECIMAL(10, 2) NOT NULL DEFAULT 0,
			width DECIMAL(10, 2) NOT NULL DEFAULT 0,
			length DECIMAL(10, 2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			tax_id VARCHAR(50) NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL DEFAULT 'customer',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS addresses (
			id UUID PRIMARY KEY,
			profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			label VARCHAR(100) NOT NULL DEFAULT '',
			street VARCHAR(255) NOT NULL,
			number VARCHAR(50) NOT NULL DEFAULT '',
			district VARCHAR(100) NOT NULL DEFAULT '',
			city VARCHAR(100) NOT NULL,
			state VARCHAR(50) NOT NULL,
			postal_code VARCHAR(8) NOT NULL,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			status VARCHAR(20) NOT NULL,
			total_amount DECIMAL(10, 2) NOT NULL,
			coupon_code VARCHAR(50),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id VARCHAR(50) NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price_at_time DECIMAL(10, 2) NOT NULL,
			size VARCHAR(10) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS admin_activities (
			id UUID PRIMARY KEY,
			icon VARCHAR(50) NOT NULL DEFAULT '',
			title VARCHAR(255) NOT NULL,
			subtitle VARCHAR(255) NOT NULL DEFAULT '',
			color VARCHAR(20) NOT NULL DEFAULT '',
			value_label VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS banners (
			id UUID PRIMARY KEY,
			tag VARCHAR(50) NOT NULL DEFAULT '',
			title VARCHAR(255) NOT NULL,
			subtitle VARCHAR(255) NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			button_primary_text VARCHAR(100) NOT NULL DEFAULT '',
			button_primary_link TEXT NOT NULL DEFAULT '',
			button_secondary_text VARCHAR(100) NOT NULL DEFAULT '',
			button_secondary_link TEXT NOT NULL DEFAULT '',
			priority INTEGER NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			display_duration INTEGER NOT NULL DEFAULT 5000,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
		CREATE INDEX IF NOT EXISTS idx_addresses_profile_id ON addresses(profile_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts a small jersey catalogue for testing.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()

	subFutebol := "futebol"
	subBasquete := "basquete"
	originalPrice := 399.90

	products := []model.Product{
		{
			ID:            "JSY-001",
			Name:          "Camisa Flamengo I 2025",
			Brand:         "Flamengo",
			Price:         299.90,
			OriginalPrice: &originalPrice,
			Category:      "futebol",
			Subcategory:   &subFutebol,
			IsNew:         true,
			Inventory:     map[string]int{"P": 5, "M": 10, "G": 3},
			Dimensions:    model.Dimensions{Weight: 0.3, Height: 4, Width: 30, Length: 40},
		},
		{
			ID:         "JSY-002",
			Name:       "Camisa Corinthians II 2025",
			Brand:      "Corinthians",
			Price:      279.90,
			Category:   "futebol",
			IsNew:      false,
			Inventory:  map[string]int{"M": 8, "G": 8},
			Dimensions: model.Dimensions{Weight: 0.3, Height: 4, Width: 30, Length: 40},
		},
		{
			ID:          "JSY-003",
			Name:        "Regata Lakers Icon Edition",
			Brand:       "Lakers",
			Price:       449.90,
			Category:    "basquete",
			Subcategory: &subBasquete,
			IsNew:       true,
			Inventory:   map[string]int{"M": 2, "G": 6, "GG": 4},
			Dimensions:  model.Dimensions{Weight: 0.25, Height: 4, Width: 30, Length: 40},
		},
	}

	insert := `
		INSERT INTO products (
			id, name, brand, price, original_price, image_url, images,
			category, subcategory, is_new, inventory,
			weight, height, width, length
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	for _, p := range products {
		_, err := pool.Exec(ctx, insert,
			p.ID, p.Name, p.Brand, p.Price, p.OriginalPrice, p.ImageURL, p.Images,
			p.Category, p.Subcategory, p.IsNew, p.Inventory,
			p.Dimensions.Weight, p.Dimensions.Height, p.Dimensions.Width, p.Dimensions.Length,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.ID, err)
		}
	}

	return products
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"order_items", "orders", "addresses", "admin_activities",
		"banners", "users", "profiles", "products",
	}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
