package main

import (
	"log"
	"os"

	"sql-workbench-be/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds a small commerce dataset so the explorer has something to browse
// and query on a fresh database. Idempotent; safe to run repeatedly.
func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding sample dataset...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) UNIQUE NOT NULL,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL,
			description TEXT,
			price DECIMAL(10,2) NOT NULL,
			category_id INTEGER REFERENCES categories(id),
			stock_quantity INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER REFERENCES customers(id),
			total_amount DECIMAL(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER REFERENCES orders(id),
			product_id INTEGER REFERENCES products(id),
			quantity INTEGER NOT NULL,
			price_at_time DECIMAL(10,2) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(order_id, product_id)
		);`,
		`INSERT INTO customers (username, email) VALUES
			('john_doe', 'john.doe@example.com'),
			('sarah_smith', 'sarah.smith@techcorp.com'),
			('mike_wilson', 'mike.wilson@datascience.com'),
			('lisa_chen', 'lisa.chen@analytics.com')
		ON CONFLICT (email) DO NOTHING;`,
		`INSERT INTO categories (name, description) VALUES
			('Electronics', 'Devices and gadgets'),
			('Books', 'Printed and digital books'),
			('Office', 'Office supplies and furniture')
		ON CONFLICT (name) DO NOTHING;`,
		`INSERT INTO products (name, description, price, category_id, stock_quantity) VALUES
			('Mechanical Keyboard', 'Tenkeyless, brown switches', 89.99, 1, 42),
			('USB-C Dock', '11-in-1 docking station', 129.50, 1, 17),
			('Designing Data-Intensive Applications', 'Hardcover, first edition', 45.00, 2, 8),
			('Standing Desk', 'Electric, dual motor', 399.00, 3, 5),
			('Notebook, A5', 'Dotted, 180 pages', 12.90, 3, 120)
		ON CONFLICT (name) DO NOTHING;`,
		`INSERT INTO orders (customer_id, total_amount, status)
			SELECT c.id, 219.49, 'delivered' FROM customers c
			WHERE c.username = 'john_doe'
			AND NOT EXISTS (SELECT 1 FROM orders o WHERE o.customer_id = c.id);`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatal("Error: Seed statement failed:", err)
		}
	}

	log.Println("✅ Sample dataset seeded")
}
