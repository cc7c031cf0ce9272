package view

// ProductCard is the listing entry for shop and archive pages.
type ProductCard struct {
	ID                string `json:"id"`
	Slug              string `json:"slug"`
	Name              string `json:"name"`
	PriceCents        int    `json:"price_cents"`
	Currency          string `json:"currency"`
	Price             string `json:"price"`
	Drop              string `json:"drop"`
	DropLabel         string `json:"drop_label"`
	Category          string `json:"category"`
	Color             string `json:"color"`
	Availability      string `json:"availability"`
	AvailabilityLabel string `json:"availability_label"`
	ImageURL          string `json:"image_url"`
	InStock           bool   `json:"in_stock"`
}

type ProductDetail struct {
	ProductCard
	Description []string `json:"description"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
}

type ProductListPage struct {
	Products []ProductCard `json:"products"`
	Total    int           `json:"total"`
}
