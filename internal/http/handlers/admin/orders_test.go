package admin

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/orders"
)

// fakeOrderStore keeps orders in a map and records status writes.
type fakeOrderStore struct {
	orders map[string]*orders.Order
	stats  orders.Stats
}

func (f *fakeOrderStore) AdminList(ctx context.Context, in orders.AdminListParams) (orders.ListResult, error) {
	res := orders.ListResult{}
	for _, o := range f.orders {
		res.Items = append(res.Items, orders.ListItem{Order: *o, Count: 1})
	}
	res.Total = int64(len(res.Items))
	return res, nil
}

func (f *fakeOrderStore) GetWithItems(ctx context.Context, id string) (orders.Order, []orders.OrderItem, error) {
	o, ok := f.orders[id]
	if !ok {
		return orders.Order{}, nil, gorm.ErrRecordNotFound
	}
	return *o, nil, nil
}

func (f *fakeOrderStore) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	if !orders.ValidPaymentStatus(status) {
		return orders.ErrInvalidStatus
	}
	o, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.PaymentStatus = status
	return nil
}

func (f *fakeOrderStore) UpdateFulfillmentStatus(ctx context.Context, id, status string) error {
	if !orders.ValidFulfillmentStatus(status) {
		return orders.ErrInvalidStatus
	}
	o, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.FulfillmentStatus = status
	return nil
}

func (f *fakeOrderStore) Stats(ctx context.Context) (orders.Stats, error) {
	return f.stats, nil
}

func newAdminOrdersRig(store *fakeOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrdersHandler(store)

	r := gin.New()
	r.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.GET("/admin/dashboard", h.Dashboard)
	r.PATCH("/admin/orders/:id", h.UpdateStatus)
	return r
}

func seededStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders: map[string]*orders.Order{
			"o1": {
				ID:                "o1",
				Number:            "WNM-20260831-ABC123",
				UserID:            "u1",
				Email:             "a@b.co",
				TotalCents:        324000,
				Currency:          "IDR",
				PaymentStatus:     orders.PaymentPending,
				FulfillmentStatus: orders.FulfillmentProcessing,
				CreatedAt:         time.Now(),
			},
		},
	}
}

func TestUpdateStatusPersists(t *testing.T) {
	store := seededStore()
	r := newAdminOrdersRig(store)

	body := `{"payment_status":"paid","fulfillment_status":"shipped"}`
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/o1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, orders.PaymentPaid, store.orders["o1"].PaymentStatus)
	assert.Equal(t, orders.FulfillmentShipped, store.orders["o1"].FulfillmentStatus)
	assert.Contains(t, w.Body.String(), `"payment_status":"paid"`)
	assert.Contains(t, w.Body.String(), `"fulfillment_status":"shipped"`)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	store := seededStore()
	r := newAdminOrdersRig(store)

	body := `{"payment_status":"refunded"}`
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/o1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, orders.PaymentPending, store.orders["o1"].PaymentStatus)
}

func TestUpdateStatusRejectsEmptyBody(t *testing.T) {
	r := newAdminOrdersRig(seededStore())

	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/o1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nothing to update.")
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	r := newAdminOrdersRig(seededStore())

	body := `{"payment_status":"paid"}`
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/missing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardStats(t *testing.T) {
	store := seededStore()
	store.stats = orders.Stats{
		TotalOrders:     12,
		RevenueCents:    3888000,
		ProcessingCount: 4,
		CompletedCount:  7,
		TodayCount:      2,
	}
	r := newAdminOrdersRig(store)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_orders":12`)
	assert.Contains(t, w.Body.String(), `"revenue":"IDR 3.888.000"`)
	assert.Contains(t, w.Body.String(), `"processing_count":4`)
	assert.Contains(t, w.Body.String(), `"completed_count":7`)
	assert.Contains(t, w.Body.String(), `"today_count":2`)
}
