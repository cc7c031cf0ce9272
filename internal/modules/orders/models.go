package orders

import (
	"time"

	"gorm.io/datatypes"
)

// Status enums are plain columns updated directly from the back-office;
// there is deliberately no state machine around them.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"

	FulfillmentProcessing = "processing"
	FulfillmentShipped    = "shipped"
	FulfillmentCompleted  = "completed"
)

func ValidPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentPaid || s == PaymentFailed
}

func ValidFulfillmentStatus(s string) bool {
	return s == FulfillmentProcessing || s == FulfillmentShipped || s == FulfillmentCompleted
}

type Order struct {
	ID                string         `gorm:"primaryKey;type:char(36)"`
	Number            string         `gorm:"type:varchar(32);not null;uniqueIndex:ux_orders_number"`
	UserID            string         `gorm:"type:char(36);not null;index:ix_orders_user;uniqueIndex:ux_orders_user_idem,priority:1"`
	Email             string         `gorm:"type:varchar(255);not null"`
	AddressJSON       datatypes.JSON `gorm:"type:json"`
	SubtotalCents     int            `gorm:"not null"`
	ShippingCents     int            `gorm:"not null"`
	TotalCents        int            `gorm:"not null"`
	Currency          string         `gorm:"type:char(3);not null;default:'IDR'"`
	PaymentStatus     string         `gorm:"type:varchar(16);not null;default:'pending';index:ix_orders_payment_status"`
	FulfillmentStatus string         `gorm:"type:varchar(16);not null;default:'processing';index:ix_orders_fulfillment_status"`
	IdempotencyKey    *string        `gorm:"type:varchar(64);uniqueIndex:ux_orders_user_idem,priority:2"`
	CreatedAt         time.Time      `gorm:"type:datetime(3);not null"`
	UpdatedAt         time.Time      `gorm:"type:datetime(3);not null"`
}

func (Order) TableName() string { return "orders" }

// OrderItem snapshots the line at order time: name, size and unit price
// are frozen here even if the catalog changes later.
type OrderItem struct {
	ID             string    `gorm:"primaryKey;type:char(36)"`
	OrderID        string    `gorm:"type:char(36);not null;index:ix_order_items_order"`
	ProductID      string    `gorm:"type:char(36);not null;index:ix_order_items_product"`
	ProductName    string    `gorm:"type:varchar(255);not null"`
	Size           string    `gorm:"type:varchar(16);not null"`
	UnitPriceCents int       `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
	LineTotalCents int       `gorm:"not null"`
	Currency       string    `gorm:"type:char(3);not null;default:'IDR'"`
	CreatedAt      time.Time `gorm:"type:datetime(3);not null"`
}

func (OrderItem) TableName() string { return "order_items" }
