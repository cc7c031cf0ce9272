package view

// CartItem is one hydrated (product, size) line. Name, price and image
// come from the live catalog, never from the persisted cart snapshot.
type CartItem struct {
	ProductID   string `json:"product_id"`
	ProductSlug string `json:"product_slug"`
	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url"`
	Size        string `json:"size"`
	Qty         int    `json:"qty"`

	UnitPriceCents int    `json:"unit_price_cents"`
	LineTotalCents int    `json:"line_total_cents"`
	UnitPrice      string `json:"unit_price"`
	LineTotal      string `json:"line_total"`
}

type CartPage struct {
	Items         []CartItem `json:"items"`
	Currency      string     `json:"currency"`
	Count         int        `json:"count"`
	SubtotalCents int        `json:"subtotal_cents"`
	Subtotal      string     `json:"subtotal"`
}
