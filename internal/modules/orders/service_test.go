package orders

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NixonSiagian/studio-archive-craft/pkg/view"
)

// stubCartSource hands Place a fixed hydrated cart.
type stubCartSource struct {
	page view.CartPage
	err  error
}

func (s *stubCartSource) BuildCartPageForUser(ctx context.Context, userID string) (view.CartPage, error) {
	return s.page, s.err
}

func TestPlaceEmptyCartRejected(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(nil, &stubCartSource{page: view.CartPage{Currency: "IDR"}}, nil, log, 25000)

	_, err := svc.Place(context.Background(), PlaceParams{UserID: "u1", Email: "a@b.co"})

	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestPlacePropagatesCartError(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	boom := errors.New("cart read failed")
	svc := NewService(nil, &stubCartSource{err: boom}, nil, log, 25000)

	_, err := svc.Place(context.Background(), PlaceParams{UserID: "u1"})

	assert.ErrorIs(t, err, boom)
}

func TestBuildOrderTotalsAndDefaults(t *testing.T) {
	page := view.CartPage{
		Items: []view.CartItem{
			{ProductID: "p1", Size: "M", Qty: 2, UnitPriceCents: 299000, LineTotalCents: 598000},
		},
		Currency:      "IDR",
		Count:         2,
		SubtotalCents: 598000,
	}

	o := buildOrder(PlaceParams{
		UserID:  "u1",
		Email:   "  Buyer@Example.COM ",
		Address: []byte(`{"city":"Jakarta"}`),
	}, page, 25000)

	assert.Equal(t, 598000, o.SubtotalCents)
	assert.Equal(t, 25000, o.ShippingCents)
	assert.Equal(t, 623000, o.TotalCents)
	assert.Equal(t, "IDR", o.Currency)
	assert.Equal(t, "buyer@example.com", o.Email)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.Equal(t, FulfillmentProcessing, o.FulfillmentStatus)
	assert.Nil(t, o.IdempotencyKey)
	assert.NotEmpty(t, o.ID)
}

func TestBuildOrderKeepsIdempotencyKey(t *testing.T) {
	o := buildOrder(PlaceParams{UserID: "u1", IdemKey: "  ck-123  "}, view.CartPage{Currency: "IDR"}, 25000)

	require.NotNil(t, o.IdempotencyKey)
	assert.Equal(t, "ck-123", *o.IdempotencyKey)
}

func TestNewOrderNumberFormat(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	n := newOrderNumber(ts)

	assert.Regexp(t, regexp.MustCompile(`^WNM-20260314-[0-9A-F]{6}$`), n)
	assert.NotEqual(t, n, newOrderNumber(ts))
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{PaymentPending, PaymentPaid, PaymentFailed} {
		assert.True(t, ValidPaymentStatus(s), s)
	}
	assert.False(t, ValidPaymentStatus("refunded"))
	assert.False(t, ValidPaymentStatus(""))
}

func TestValidFulfillmentStatus(t *testing.T) {
	for _, s := range []string{FulfillmentProcessing, FulfillmentShipped, FulfillmentCompleted} {
		assert.True(t, ValidFulfillmentStatus(s), s)
	}
	assert.False(t, ValidFulfillmentStatus("cancelled"))
}
