package auth

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(255);not null;default:''" json:"full_name"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// UserRole is a separate row per elevated role. No row means customer;
// the resolver applies that default so a missing record is never an error.
type UserRole struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	UserID    string    `gorm:"type:char(36);not null;uniqueIndex:ux_user_roles_user_role,priority:1"`
	Role      string    `gorm:"type:varchar(32);not null;uniqueIndex:ux_user_roles_user_role,priority:2"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (UserRole) TableName() string { return "user_roles" }
