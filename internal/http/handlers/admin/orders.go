package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/validation"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/orders"
	"github.com/NixonSiagian/studio-archive-craft/internal/shared/apperr"
	"github.com/NixonSiagian/studio-archive-craft/pkg/view"
)

// OrderStore is the slice of orders.Repo the back-office needs.
type OrderStore interface {
	AdminList(ctx context.Context, in orders.AdminListParams) (orders.ListResult, error)
	GetWithItems(ctx context.Context, id string) (orders.Order, []orders.OrderItem, error)
	UpdatePaymentStatus(ctx context.Context, id, status string) error
	UpdateFulfillmentStatus(ctx context.Context, id, status string) error
	Stats(ctx context.Context) (orders.Stats, error)
}

type OrdersHandler struct {
	Store OrderStore
}

func NewOrdersHandler(store OrderStore) *OrdersHandler {
	return &OrdersHandler{Store: store}
}

// Dashboard handles GET /admin/dashboard.
func (h *OrdersHandler) Dashboard(c *gin.Context) {
	st, err := h.Store.Stats(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.DashboardPage{
		TotalOrders:     st.TotalOrders,
		RevenueCents:    st.RevenueCents,
		Revenue:         view.MoneyFromCents(int(st.RevenueCents), "IDR"),
		ProcessingCount: st.ProcessingCount,
		CompletedCount:  st.CompletedCount,
		TodayCount:      st.TodayCount,
	})
}

// List handles GET /admin/orders with payment/fulfillment filters.
func (h *OrdersHandler) List(c *gin.Context) {
	page := parseInt(c.Query("page"), 1)

	res, err := h.Store.AdminList(c.Request.Context(), orders.AdminListParams{
		Q:                 strings.TrimSpace(c.Query("q")),
		PaymentStatus:     strings.TrimSpace(c.Query("payment_status")),
		FulfillmentStatus: strings.TrimSpace(c.Query("fulfillment_status")),
		Page:              page,
		PageSize:          30,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := view.OrderListPage{
		Orders:     make([]view.OrderSummary, 0, len(res.Items)),
		Page:       page,
		TotalPages: pagesFromTotal(res.Total, 30),
		Total:      res.Total,
	}
	for _, it := range res.Items {
		out.Orders = append(out.Orders, view.OrderSummary{
			ID:                it.Order.ID,
			Number:            it.Order.Number,
			PaymentStatus:     it.Order.PaymentStatus,
			FulfillmentStatus: it.Order.FulfillmentStatus,
			Currency:          it.Order.Currency,
			TotalCents:        it.Order.TotalCents,
			Total:             view.MoneyFromCents(it.Order.TotalCents, it.Order.Currency),
			ItemCount:         it.Count,
			CreatedAt:         it.Order.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Detail handles GET /admin/orders/:id.
func (h *OrdersHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	o, items, err := h.Store.GetWithItems(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	d := view.OrderDetail{
		OrderSummary: view.OrderSummary{
			ID:                o.ID,
			Number:            o.Number,
			PaymentStatus:     o.PaymentStatus,
			FulfillmentStatus: o.FulfillmentStatus,
			Currency:          o.Currency,
			TotalCents:        o.TotalCents,
			Total:             view.MoneyFromCents(o.TotalCents, o.Currency),
			ItemCount:         len(items),
			CreatedAt:         o.CreatedAt.Format("2006-01-02 15:04"),
		},
		SubtotalCents: o.SubtotalCents,
		Subtotal:      view.MoneyFromCents(o.SubtotalCents, o.Currency),
		ShippingCents: o.ShippingCents,
		Shipping:      view.MoneyFromCents(o.ShippingCents, o.Currency),
		Email:         o.Email,
		Items:         make([]view.OrderItem, 0, len(items)),
	}
	if len(o.AddressJSON) > 0 {
		d.Address = json.RawMessage(o.AddressJSON)
	}
	for _, it := range items {
		d.Items = append(d.Items, view.OrderItem{
			ProductName:    it.ProductName,
			Size:           it.Size,
			Qty:            it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.LineTotalCents,
			Unit:           view.MoneyFromCents(it.UnitPriceCents, it.Currency),
			Line:           view.MoneyFromCents(it.LineTotalCents, it.Currency),
		})
	}
	c.JSON(http.StatusOK, d)
}

type statusInput struct {
	PaymentStatus     string `json:"payment_status" binding:"omitempty,oneof=pending paid failed"`
	FulfillmentStatus string `json:"fulfillment_status" binding:"omitempty,oneof=processing shipped completed"`
}

// UpdateStatus handles PATCH /admin/orders/:id - direct enum updates,
// no transition rules.
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var in statusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", validation.FromBindError(err, &in)))
		return
	}
	if in.PaymentStatus == "" && in.FulfillmentStatus == "" {
		middleware.Fail(c, apperr.InvalidErr("Nothing to update.", nil))
		return
	}

	if in.PaymentStatus != "" {
		if err := h.Store.UpdatePaymentStatus(c.Request.Context(), id, in.PaymentStatus); err != nil {
			failStatus(c, err)
			return
		}
	}
	if in.FulfillmentStatus != "" {
		if err := h.Store.UpdateFulfillmentStatus(c.Request.Context(), id, in.FulfillmentStatus); err != nil {
			failStatus(c, err)
			return
		}
	}

	h.Detail(c)
}

func failStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
	case errors.Is(err, orders.ErrInvalidStatus):
		middleware.Fail(c, apperr.InvalidErr("Invalid status value.", nil))
	default:
		middleware.Fail(c, apperr.Wrap(err))
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func pagesFromTotal(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	p := int((total + int64(pageSize) - 1) / int64(pageSize))
	if p < 1 {
		p = 1
	}
	return p
}
