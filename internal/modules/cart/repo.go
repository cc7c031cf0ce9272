package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/cartcookie"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) GetOrCreateUserCart(ctx context.Context, userID string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).
		Where(Cart{UserID: userID}).
		Attrs(Cart{ID: uuid.NewString(), CreatedAt: time.Now(), UpdatedAt: time.Now()}).
		FirstOrCreate(&c).Error
	return c, err
}

// ListItems returns lines in insertion order.
func (r *Repo) ListItems(ctx context.Context, cartID string) ([]CartItem, error) {
	var items []CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

// AddItem merges qty into an existing (product, size) line or creates
// one. Matches the cookie cart's AddItem semantics.
func (r *Repo) AddItem(ctx context.Context, cartID, productID, size string, qty int) error {
	if qty < 1 {
		qty = 1
	}

	var existing CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ?", cartID, productID, size).
		First(&existing).Error
	switch {
	case err == nil:
		return r.db.WithContext(ctx).Model(&CartItem{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity + ?", qty),
				"updated_at": time.Now(),
			}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := CartItem{
			ID:        uuid.NewString(),
			CartID:    cartID,
			ProductID: productID,
			Size:      size,
			Quantity:  qty,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		return r.db.WithContext(ctx).Create(&item).Error
	default:
		return err
	}
}

// UpdateItemQty sets the quantity; qty <= 0 deletes the line.
func (r *Repo) UpdateItemQty(ctx context.Context, cartID, productID, size string, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(ctx, cartID, productID, size)
	}
	return r.db.WithContext(ctx).Model(&CartItem{}).
		Where("cart_id = ? AND product_id = ? AND size = ?", cartID, productID, size).
		Updates(map[string]any{
			"quantity":   qty,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repo) RemoveItem(ctx context.Context, cartID, productID, size string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ?", cartID, productID, size).
		Delete(&CartItem{}).Error
}

func (r *Repo) ClearCart(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&CartItem{}).Error
}

// MergeCookieCart folds a guest cookie cart into a user cart on login.
// Quantities for matching (product, size) lines add up.
func (r *Repo) MergeCookieCart(ctx context.Context, cartID string, guest *cartcookie.Cart) error {
	if guest == nil || guest.IsEmpty() {
		return nil
	}
	for _, it := range guest.Items {
		if it.ProductID == "" || it.Qty < 1 {
			continue
		}
		if err := r.AddItem(ctx, cartID, it.ProductID, it.Size, it.Qty); err != nil {
			return err
		}
	}
	return nil
}
