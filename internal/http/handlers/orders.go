package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/orders"
	"github.com/NixonSiagian/studio-archive-craft/internal/shared/apperr"
	"github.com/NixonSiagian/studio-archive-craft/pkg/view"
)

// OrdersHandler serves the signed-in customer's own orders.
type OrdersHandler struct {
	Repo *orders.Repo
}

func NewOrdersHandler(repo *orders.Repo) *OrdersHandler {
	return &OrdersHandler{Repo: repo}
}

// List handles GET /account/orders.
func (h *OrdersHandler) List(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	page := parseInt(c.Query("page"), 1)

	res, err := h.Repo.ListByUser(c.Request.Context(), orders.ListByUserParams{
		UserID: u.ID, Page: page, PageSize: 20,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := view.OrderListPage{
		Orders:     make([]view.OrderSummary, 0, len(res.Items)),
		Page:       page,
		TotalPages: pagesFromTotal(res.Total, 20),
		Total:      res.Total,
	}
	for _, it := range res.Items {
		out.Orders = append(out.Orders, orderSummary(it.Order, it.Count))
	}
	c.JSON(http.StatusOK, out)
}

// Detail handles GET /account/orders/:id. Only the owner sees it.
func (h *OrdersHandler) Detail(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	o, items, err := h.Repo.GetWithItems(c.Request.Context(), id)
	if err != nil || o.UserID != u.ID {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	c.JSON(http.StatusOK, orderDetail(o, items))
}

func orderSummary(o orders.Order, itemCount int) view.OrderSummary {
	return view.OrderSummary{
		ID:                o.ID,
		Number:            o.Number,
		PaymentStatus:     o.PaymentStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		Currency:          o.Currency,
		TotalCents:        o.TotalCents,
		Total:             view.MoneyFromCents(o.TotalCents, o.Currency),
		ItemCount:         itemCount,
		CreatedAt:         o.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func orderDetail(o orders.Order, items []orders.OrderItem) view.OrderDetail {
	d := view.OrderDetail{
		OrderSummary:  orderSummary(o, len(items)),
		SubtotalCents: o.SubtotalCents,
		Subtotal:      view.MoneyFromCents(o.SubtotalCents, o.Currency),
		ShippingCents: o.ShippingCents,
		Shipping:      view.MoneyFromCents(o.ShippingCents, o.Currency),
		Email:         o.Email,
		Address:       rawAddress(o.AddressJSON),
		Items:         make([]view.OrderItem, 0, len(items)),
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
	return d
}

func rawAddress(b datatypes.JSON) any {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}
