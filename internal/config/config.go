package config

import (
	"os"
	"time"
)

// Config carries everything cmd/web reads from the environment.
// godotenv loads .env before this runs; prod uses real env vars.
type Config struct {
	Addr      string
	DBDSN     string
	SecretKey string

	SessionCookie string
	SessionTTL    time.Duration
	CartCookie    string
	CookieSecure  bool

	RedisAddr     string
	CatalogTTL    time.Duration
	KafkaBrokers  string
	OrderTopic    string
	RoleTimeout   time.Duration
	ShippingCents int
}

func Load() Config {
	return Config{
		Addr:      envOr("HTTP_ADDR", ":8080"),
		DBDSN:     os.Getenv("DB_DSN"),
		SecretKey: envOr("SECRET_KEY", ""),

		SessionCookie: envOr("SESSION_COOKIE", "wnm_session"),
		SessionTTL:    durationOr("SESSION_TTL", 30*24*time.Hour),
		CartCookie:    envOr("CART_COOKIE", "wnm_cart"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "1",

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CatalogTTL:    durationOr("CATALOG_CACHE_TTL", 5*time.Minute),
		KafkaBrokers:  os.Getenv("KAFKA_BROKERS"),
		OrderTopic:    envOr("KAFKA_ORDER_TOPIC", "orders.placed"),
		RoleTimeout:   durationOr("ROLE_RESOLVE_TIMEOUT", 2*time.Second),
		ShippingCents: 25000, // flat IDR shipping
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationOr(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
