package catalog

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID                string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Slug              string         `gorm:"type:varchar(191);not null;uniqueIndex:ux_products_slug" json:"slug"`
	Name              string         `gorm:"type:varchar(255);not null" json:"name"`
	PriceCents        int            `gorm:"not null" json:"price_cents"`
	Currency          string         `gorm:"type:char(3);not null;default:'IDR'" json:"currency"`
	Drop              string         `gorm:"type:varchar(64);not null;index:ix_products_drop" json:"drop"`
	DropLabel         string         `gorm:"type:varchar(64);not null" json:"drop_label"`
	Category          string         `gorm:"type:varchar(64);not null;index:ix_products_category" json:"category"`
	Color             string         `gorm:"type:varchar(64);not null" json:"color"`
	Availability      string         `gorm:"type:varchar(32);not null;default:'available'" json:"availability"`
	AvailabilityLabel string         `gorm:"type:varchar(64);not null;default:''" json:"availability_label"`
	Description       datatypes.JSON `gorm:"type:json" json:"description"`
	Sizes             datatypes.JSON `gorm:"type:json" json:"sizes"`
	InStock           bool           `gorm:"not null;default:true" json:"in_stock"`
	Status            string         `gorm:"type:varchar(32);not null;default:'active';index:ix_products_status" json:"status"`
	CreatedAt         time.Time      `gorm:"type:datetime(3);not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"type:datetime(3);not null" json:"updated_at"`

	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images"`
}

func (Product) TableName() string { return "products" }

type ProductImage struct {
	ID         string    `gorm:"primaryKey;type:char(36)" json:"id"`
	ProductID  string    `gorm:"type:char(36);not null;index:ix_product_images_product" json:"product_id"`
	StorageKey string    `gorm:"type:varchar(255);not null" json:"-"`
	URL        string    `gorm:"type:varchar(512);not null" json:"url"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null" json:"created_at"`
}

func (ProductImage) TableName() string { return "product_images" }

// SizeList decodes the sizes JSON column. A malformed column reads as
// no sizes rather than an error.
func (p Product) SizeList() []string {
	var sizes []string
	if len(p.Sizes) > 0 {
		_ = json.Unmarshal(p.Sizes, &sizes)
	}
	return sizes
}

func (p Product) HasSize(size string) bool {
	for _, s := range p.SizeList() {
		if s == size {
			return true
		}
	}
	return false
}

func (p Product) DescriptionLines() []string {
	var lines []string
	if len(p.Description) > 0 {
		_ = json.Unmarshal(p.Description, &lines)
	}
	return lines
}

func (p Product) PrimaryImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
