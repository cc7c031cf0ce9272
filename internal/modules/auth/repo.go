package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).
		First(&u, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	return u, err
}

func (r *Repo) GetByID(ctx context.Context, id string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

// Register hashes the password and creates the user. A duplicate email
// surfaces as ErrEmailTaken whether caught by the pre-check or the
// unique index.
func (r *Repo) Register(ctx context.Context, email, password, fullName string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := r.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(fullName),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isDuplicateKey(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

// Authenticate verifies credentials. Unknown email and wrong password
// both return ErrInvalidCredentials so the two cases are not
// distinguishable from outside.
func (r *Repo) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (r *Repo) ListUsers(ctx context.Context, limit, offset int) ([]User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, total, err
}

// RolesByUserIDs returns the elevated roles for each user. Users with
// no rows are absent from the map.
func (r *Repo) RolesByUserIDs(ctx context.Context, ids []string) (map[string][]string, error) {
	out := make(map[string][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.UserID] = append(out[row.UserID], row.Role)
	}
	return out, nil
}

func (r *Repo) GrantRole(ctx context.Context, userID, role string) error {
	row := UserRole{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	if isDuplicateKey(err) {
		return nil
	}
	return err
}

func (r *Repo) RevokeRole(ctx context.Context, userID, role string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&UserRole{}).Error
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
