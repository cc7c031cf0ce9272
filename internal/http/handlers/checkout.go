package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/validation"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/orders"
	"github.com/NixonSiagian/studio-archive-craft/internal/shared/apperr"
	"github.com/NixonSiagian/studio-archive-craft/pkg/view"
)

type CheckoutHandler struct {
	OrderSvc *orders.Service
}

func NewCheckoutHandler(svc *orders.Service) *CheckoutHandler {
	return &CheckoutHandler{OrderSvc: svc}
}

type checkoutInput struct {
	Email      string `json:"email" binding:"required,email,max=255"`
	FirstName  string `json:"first_name" binding:"required,min=2,max=100"`
	LastName   string `json:"last_name" binding:"required,min=2,max=100"`
	Phone      string `json:"phone" binding:"required,min=5,max=32"`
	Address    string `json:"address" binding:"required,min=5,max=255"`
	City       string `json:"city" binding:"required,min=2,max=100"`
	Province   string `json:"province" binding:"required,min=2,max=100"`
	PostalCode string `json:"postal_code" binding:"required,min=2,max=32"`
	Country    string `json:"country" binding:"required,min=2,max=64"`
	IdemKey    string `json:"idempotency_key" binding:"omitempty,max=64"`
}

type addressJSON struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Post handles POST /checkout. Requires auth. No payment is taken:
// the order lands as pending/processing and the back-office moves it
// from there.
func (h *CheckoutHandler) Post(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Sign in to check out."))
		return
	}

	var in checkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", validation.FromBindError(err, &in)))
		return
	}

	addr, err := json.Marshal(addressJSON{
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		Province:   strings.TrimSpace(in.Province),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	order, err := h.OrderSvc.Place(c.Request.Context(), orders.PlaceParams{
		UserID:  u.ID,
		Email:   in.Email,
		Address: addr,
		IdemKey: in.IdemKey,
	})
	if err != nil {
		if errors.Is(err, orders.ErrCartEmpty) {
			middleware.Fail(c, apperr.InvalidErr("Your cart is empty.", nil))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order": view.OrderSummary{
			ID:                order.ID,
			Number:            order.Number,
			PaymentStatus:     order.PaymentStatus,
			FulfillmentStatus: order.FulfillmentStatus,
			Currency:          order.Currency,
			TotalCents:        order.TotalCents,
			Total:             view.MoneyFromCents(order.TotalCents, order.Currency),
			CreatedAt:         order.CreatedAt.Format("2006-01-02 15:04"),
		},
	})
}
