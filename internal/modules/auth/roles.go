package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// RoleResolver answers "what can this user do" separately from "who is
// this user". Route guards must only consult a role that came out of
// Resolve; there is no partially-resolved state visible to them.
type RoleResolver interface {
	Resolve(ctx context.Context, userID string) string
}

// DBRoleResolver reads user_roles with a bounded timeout. A lookup
// failure degrades to customer instead of blocking the request or
// leaking a stale admin flag.
type DBRoleResolver struct {
	DB      *gorm.DB
	Timeout time.Duration
	Log     *slog.Logger
}

func (r *DBRoleResolver) Resolve(ctx context.Context, userID string) string {
	if userID == "" {
		return RoleCustomer
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var row UserRole
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, RoleAdmin).
		First(&row).Error
	switch {
	case err == nil:
		return RoleAdmin
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no role row: plain customer
		return RoleCustomer
	default:
		if r.Log != nil {
			r.Log.Warn("role_resolve_failed",
				slog.String("user_id", userID),
				slog.Any("err", err),
			)
		}
		return RoleCustomer
	}
}
