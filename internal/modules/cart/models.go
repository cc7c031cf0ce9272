package cart

import "time"

// Cart is the DB-backed cart of a signed-in user: one per user, merged
// from the guest cookie cart on login.
type Cart struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	UserID    string    `gorm:"type:char(36);not null;uniqueIndex:ux_carts_user"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`

	Items []CartItem `gorm:"foreignKey:CartID"`
}

func (Cart) TableName() string { return "carts" }

// CartItem rows are unique per (cart, product, size); adds merge into
// the existing row.
type CartItem struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	CartID    string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_key,priority:1"`
	ProductID string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_key,priority:2"`
	Size      string    `gorm:"type:varchar(16);not null;uniqueIndex:ux_cart_items_key,priority:3"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (CartItem) TableName() string { return "cart_items" }
