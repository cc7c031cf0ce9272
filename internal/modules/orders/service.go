package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/events"
	cartmod "github.com/NixonSiagian/studio-archive-craft/internal/modules/cart"
	"github.com/NixonSiagian/studio-archive-craft/pkg/view"
)

// CartSource yields the hydrated cart an order is built from.
type CartSource interface {
	BuildCartPageForUser(ctx context.Context, userID string) (view.CartPage, error)
}

// Service places orders. Payment is not processed anywhere in this
// system: orders start pending and the back-office flips statuses.
// Stock is neither reserved nor deducted.
type Service struct {
	db            *gorm.DB
	carts         CartSource
	publisher     events.Publisher
	log           *slog.Logger
	shippingCents int
}

func NewService(db *gorm.DB, carts CartSource, pub events.Publisher, log *slog.Logger, shippingCents int) *Service {
	return &Service{
		db:            db,
		carts:         carts,
		publisher:     pub,
		log:           log,
		shippingCents: shippingCents,
	}
}

type PlaceParams struct {
	UserID  string
	Email   string
	Address []byte // validated address JSON from the checkout form
	IdemKey string
}

// Place snapshots the user's hydrated cart into an order and clears the
// cart, all in one transaction. A repeated idempotency key returns the
// already-created order instead of double-charging the double-click.
func (s *Service) Place(ctx context.Context, in PlaceParams) (Order, error) {
	if key := strings.TrimSpace(in.IdemKey); key != "" {
		if existing, err := NewRepo(s.db).GetByIdemKey(ctx, in.UserID, key); err == nil {
			return existing, nil
		}
	}

	page, err := s.carts.BuildCartPageForUser(ctx, in.UserID)
	if err != nil {
		return Order{}, err
	}
	if len(page.Items) == 0 {
		return Order{}, ErrCartEmpty
	}

	order := buildOrder(in, page, s.shippingCents)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, it := range page.Items {
			item := OrderItem{
				ID:             uuid.NewString(),
				OrderID:        order.ID,
				ProductID:      it.ProductID,
				ProductName:    it.ProductName,
				Size:           it.Size,
				UnitPriceCents: it.UnitPriceCents,
				Quantity:       it.Qty,
				LineTotalCents: it.LineTotalCents,
				Currency:       page.Currency,
				CreatedAt:      time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		userCart, err := cartmod.NewRepo(tx).GetOrCreateUserCart(ctx, in.UserID)
		if err != nil {
			return err
		}
		return cartmod.NewRepo(tx).ClearCart(ctx, userCart.ID)
	})
	if err != nil {
		return Order{}, err
	}

	s.publish(ctx, order, page.Count)
	return order, nil
}

func (s *Service) publish(ctx context.Context, o Order, itemCount int) {
	if s.publisher == nil {
		return
	}
	ev := events.OrderPlaced{
		OrderID:    o.ID,
		Number:     o.Number,
		UserID:     o.UserID,
		Email:      o.Email,
		TotalCents: o.TotalCents,
		Currency:   o.Currency,
		ItemCount:  itemCount,
		PlacedAt:   o.CreatedAt,
	}
	if err := s.publisher.PublishOrderPlaced(ctx, ev); err != nil {
		// the order is already committed; a lost event is log-only
		s.log.Error("order_event_publish_failed",
			slog.String("order_id", o.ID),
			slog.Any("err", err),
		)
	}
}

func buildOrder(in PlaceParams, page view.CartPage, shippingCents int) Order {
	var idem *string
	if key := strings.TrimSpace(in.IdemKey); key != "" {
		idem = &key
	}
	now := time.Now()
	return Order{
		ID:                uuid.NewString(),
		Number:            newOrderNumber(now),
		UserID:            in.UserID,
		Email:             strings.ToLower(strings.TrimSpace(in.Email)),
		AddressJSON:       datatypes.JSON(in.Address),
		SubtotalCents:     page.SubtotalCents,
		ShippingCents:     shippingCents,
		TotalCents:        page.SubtotalCents + shippingCents,
		Currency:          page.Currency,
		PaymentStatus:     PaymentPending,
		FulfillmentStatus: FulfillmentProcessing,
		IdempotencyKey:    idem,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func newOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("WNM-%s-%s", t.Format("20060102"), suffix)
}

// IsNotFound reports whether err is a missing-row error from the repo.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
