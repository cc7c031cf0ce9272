package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListFilter struct {
	Drop     string
	Category string
	Limit    int
	Offset   int
}

func (r *Repo) ListActive(ctx context.Context, f ListFilter) ([]Product, error) {
	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 24
	}

	q := r.db.WithContext(ctx).
		Model(&Product{}).
		Where("status = ?", "active").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		})
	if f.Drop != "" {
		q = q.Where("`drop` = ?", f.Drop)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var items []Product
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(f.Offset).
		Find(&items).Error
	return items, err
}

// ListAll returns every product regardless of status, for the
// back-office listing. Pass status to narrow to one value.
func (r *Repo) ListAll(ctx context.Context, status string) ([]Product, error) {
	q := r.db.WithContext(ctx).
		Model(&Product{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Order("created_at DESC, id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var items []Product
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		First(&p, "slug = ?", slug).Error
	return p, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		First(&p, "id = ?", id).Error
	return p, err
}

// GetByIDs loads products for cart hydration. Missing IDs are simply
// absent from the result; callers skip those lines.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) (map[string]Product, error) {
	out := make(map[string]Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var items []Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Where("id IN ?", ids).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		out[p.ID] = p
	}
	return out, nil
}

type ProductInput struct {
	Slug              string
	Name              string
	PriceCents        int
	Currency          string
	Drop              string
	DropLabel         string
	Category          string
	Color             string
	Availability      string
	AvailabilityLabel string
	Description       []byte
	Sizes             []byte
	InStock           bool
	Status            string
}

func (r *Repo) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	p := Product{
		ID:                uuid.NewString(),
		Slug:              in.Slug,
		Name:              in.Name,
		PriceCents:        in.PriceCents,
		Currency:          in.Currency,
		Drop:              in.Drop,
		DropLabel:         in.DropLabel,
		Category:          in.Category,
		Color:             in.Color,
		Availability:      in.Availability,
		AvailabilityLabel: in.AvailabilityLabel,
		Description:       datatypes.JSON(in.Description),
		Sizes:             datatypes.JSON(in.Sizes),
		InStock:           in.InStock,
		Status:            in.Status,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) UpdateProduct(ctx context.Context, id string, in ProductInput) error {
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"slug":               in.Slug,
			"name":               in.Name,
			"price_cents":        in.PriceCents,
			"currency":           in.Currency,
			"drop":               in.Drop,
			"drop_label":         in.DropLabel,
			"category":           in.Category,
			"color":              in.Color,
			"availability":       in.Availability,
			"availability_label": in.AvailabilityLabel,
			"description":        datatypes.JSON(in.Description),
			"sizes":              datatypes.JSON(in.Sizes),
			"in_stock":           in.InStock,
			"status":             in.Status,
			"updated_at":         time.Now(),
		}).Error
}

func (r *Repo) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}

func (r *Repo) AddImage(ctx context.Context, productID, storageKey, url string, position int) (ProductImage, error) {
	im := ProductImage{
		ID:         uuid.NewString(),
		ProductID:  productID,
		StorageKey: storageKey,
		URL:        url,
		Position:   position,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&im).Error; err != nil {
		return ProductImage{}, err
	}
	return im, nil
}

func (r *Repo) GetImage(ctx context.Context, productID, imageID string) (ProductImage, error) {
	var im ProductImage
	err := r.db.WithContext(ctx).First(&im, "id = ? AND product_id = ?", imageID, productID).Error
	return im, err
}

func (r *Repo) DeleteImage(ctx context.Context, productID, imageID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", imageID, productID).
		Delete(&ProductImage{}).Error
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
