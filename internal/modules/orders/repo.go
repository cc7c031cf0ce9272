package orders

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListByUserParams struct {
	UserID   string
	Page     int
	PageSize int
}

type ListItem struct {
	Order Order
	Count int
}

type ListResult struct {
	Items []ListItem
	Total int64
}

func (r *Repo) ListByUser(ctx context.Context, in ListByUserParams) (ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 20
	}

	q := r.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", in.UserID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var rows []Order
	if err := q.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&rows).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: r.withCounts(ctx, rows), Total: total}, nil
}

func (r *Repo) GetWithItems(ctx context.Context, id string) (Order, []OrderItem, error) {
	var o Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return Order{}, nil, err
	}
	var items []OrderItem
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&items, "order_id = ?", id).Error; err != nil {
		return Order{}, nil, err
	}
	return o, items, nil
}

func (r *Repo) GetByIdemKey(ctx context.Context, userID, key string) (Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		First(&o, "user_id = ? AND idempotency_key = ?", userID, key).Error
	return o, err
}

type AdminListParams struct {
	Q                 string // matches order number or email
	PaymentStatus     string
	FulfillmentStatus string
	Page              int
	PageSize          int
}

func (r *Repo) AdminList(ctx context.Context, in AdminListParams) (ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 30
	}

	q := r.db.WithContext(ctx).Model(&Order{})
	if s := strings.TrimSpace(in.Q); s != "" {
		like := "%" + s + "%"
		q = q.Where("number LIKE ? OR email LIKE ?", like, like)
	}
	if in.PaymentStatus != "" {
		q = q.Where("payment_status = ?", in.PaymentStatus)
	}
	if in.FulfillmentStatus != "" {
		q = q.Where("fulfillment_status = ?", in.FulfillmentStatus)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var rows []Order
	if err := q.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&rows).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: r.withCounts(ctx, rows), Total: total}, nil
}

func (r *Repo) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	if !ValidPaymentStatus(status) {
		return ErrInvalidStatus
	}
	return r.setStatus(ctx, id, "payment_status", status)
}

func (r *Repo) UpdateFulfillmentStatus(ctx context.Context, id, status string) error {
	if !ValidFulfillmentStatus(status) {
		return ErrInvalidStatus
	}
	return r.setStatus(ctx, id, "fulfillment_status", status)
}

func (r *Repo) setStatus(ctx context.Context, id, column, status string) error {
	res := r.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			column:       status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type Stats struct {
	TotalOrders     int64
	RevenueCents    int64
	ProcessingCount int64
	CompletedCount  int64
	TodayCount      int64
}

// Stats aggregates the back-office dashboard counters in one pass per metric.
func (r *Repo) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	db := r.db.WithContext(ctx).Model(&Order{})

	if err := db.Session(&gorm.Session{}).Count(&st.TotalOrders).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Session(&gorm.Session{}).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&st.RevenueCents).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("fulfillment_status = ?", FulfillmentProcessing).
		Count(&st.ProcessingCount).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("fulfillment_status = ?", FulfillmentCompleted).
		Count(&st.CompletedCount).Error; err != nil {
		return Stats{}, err
	}
	midnight := time.Now().Truncate(24 * time.Hour)
	if err := db.Session(&gorm.Session{}).
		Where("created_at >= ?", midnight).
		Count(&st.TodayCount).Error; err != nil {
		return Stats{}, err
	}
	return st, nil
}

func (r *Repo) withCounts(ctx context.Context, rows []Order) []ListItem {
	items := make([]ListItem, len(rows))
	for i, o := range rows {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderItem{}).Where("order_id = ?", o.ID).Count(&count).Error; err != nil {
			count = 0
		}
		items[i] = ListItem{Order: o, Count: int(count)}
	}
	return items
}
