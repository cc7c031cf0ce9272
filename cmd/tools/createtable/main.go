package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS users (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  password_hash VARCHAR(255) NOT NULL,
	  full_name VARCHAR(255) NOT NULL DEFAULT '',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS user_roles (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  role VARCHAR(32) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_user_roles_user_role (user_id, role),
	  CONSTRAINT fk_user_roles_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS sessions (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  token_hash BINARY(32) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  last_seen_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_sessions_user_id (user_id),
	  KEY ix_sessions_expires_at (expires_at),
	  CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS products (
	  id CHAR(36) NOT NULL,
	  slug VARCHAR(191) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  price_cents INT NOT NULL,
	  currency CHAR(3) NOT NULL DEFAULT 'IDR',
	  ` + "`drop`" + ` VARCHAR(64) NOT NULL,
	  drop_label VARCHAR(64) NOT NULL DEFAULT '',
	  category VARCHAR(64) NOT NULL,
	  color VARCHAR(64) NOT NULL DEFAULT '',
	  availability VARCHAR(32) NOT NULL DEFAULT 'available',
	  availability_label VARCHAR(64) NOT NULL DEFAULT '',
	  description JSON,
	  sizes JSON,
	  in_stock TINYINT(1) NOT NULL DEFAULT 1,
	  status VARCHAR(32) NOT NULL DEFAULT 'active',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_products_slug (slug),
	  KEY ix_products_drop (` + "`drop`" + `),
	  KEY ix_products_category (category),
	  KEY ix_products_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS product_images (
	  id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  storage_key VARCHAR(255) NOT NULL,
	  url VARCHAR(512) NOT NULL,
	  position INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_product_images_product (product_id),
	  CONSTRAINT fk_product_images_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS carts (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_carts_user (user_id),
	  CONSTRAINT fk_carts_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS cart_items (
	  id CHAR(36) NOT NULL,
	  cart_id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  size VARCHAR(16) NOT NULL,
	  quantity INT NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_cart_items_cart_product_size (cart_id, product_id, size),
	  KEY ix_cart_items_product (product_id),
	  CONSTRAINT fk_cart_items_cart FOREIGN KEY (cart_id) REFERENCES carts(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS orders (
	  id CHAR(36) NOT NULL,
	  number VARCHAR(32) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  address_json JSON,
	  subtotal_cents INT NOT NULL,
	  shipping_cents INT NOT NULL,
	  total_cents INT NOT NULL,
	  currency CHAR(3) NOT NULL DEFAULT 'IDR',
	  payment_status VARCHAR(16) NOT NULL DEFAULT 'pending',
	  fulfillment_status VARCHAR(16) NOT NULL DEFAULT 'processing',
	  idempotency_key VARCHAR(64) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_orders_number (number),
	  UNIQUE KEY ux_orders_user_idem (user_id, idempotency_key),
	  KEY ix_orders_user (user_id),
	  KEY ix_orders_payment_status (payment_status),
	  KEY ix_orders_fulfillment_status (fulfillment_status),
	  CONSTRAINT fk_orders_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_items (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  product_name VARCHAR(255) NOT NULL,
	  size VARCHAR(16) NOT NULL,
	  unit_price_cents INT NOT NULL,
	  quantity INT NOT NULL,
	  line_total_cents INT NOT NULL,
	  currency CHAR(3) NOT NULL DEFAULT 'IDR',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_order_items_order (order_id),
	  KEY ix_order_items_product (product_id),
	  CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ all tables created successfully")
}
