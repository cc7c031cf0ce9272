package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "wnm_session", cfg.SessionCookie)
	assert.Equal(t, "wnm_cart", cfg.CartCookie)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.CatalogTTL)
	assert.Equal(t, "orders.placed", cfg.OrderTopic)
	assert.Equal(t, 2*time.Second, cfg.RoleTimeout)
	assert.Equal(t, 25000, cfg.ShippingCents)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("COOKIE_SECURE", "1")
	t.Setenv("CATALOG_CACHE_TTL", "30s")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 30*time.Second, cfg.CatalogTTL)
}

func TestDurationOrIgnoresMalformed(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	cfg := Load()
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
}
