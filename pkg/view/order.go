package view

type OrderItem struct {
	ProductName    string `json:"product_name"`
	Size           string `json:"size"`
	Qty            int    `json:"qty"`
	UnitPriceCents int    `json:"unit_price_cents"`
	LineTotalCents int    `json:"line_total_cents"`
	Unit           string `json:"unit"`
	Line           string `json:"line"`
}

type OrderSummary struct {
	ID                string `json:"id"`
	Number            string `json:"number"`
	PaymentStatus     string `json:"payment_status"`
	FulfillmentStatus string `json:"fulfillment_status"`
	Currency          string `json:"currency"`
	TotalCents        int    `json:"total_cents"`
	Total             string `json:"total"`
	ItemCount         int    `json:"item_count"`
	CreatedAt         string `json:"created_at"`
}

type OrderDetail struct {
	OrderSummary
	SubtotalCents int         `json:"subtotal_cents"`
	Subtotal      string      `json:"subtotal"`
	ShippingCents int         `json:"shipping_cents"`
	Shipping      string      `json:"shipping"`
	Email         string      `json:"email"`
	Address       any         `json:"address"`
	Items         []OrderItem `json:"items"`
}

type DashboardPage struct {
	TotalOrders     int64  `json:"total_orders"`
	RevenueCents    int64  `json:"revenue_cents"`
	Revenue         string `json:"revenue"`
	ProcessingCount int64  `json:"processing_count"`
	CompletedCount  int64  `json:"completed_count"`
	TodayCount      int64  `json:"today_count"`
}

type OrderListPage struct {
	Orders     []OrderSummary `json:"orders"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int64          `json:"total"`
}
