package middleware

import (
	"crypto/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/modules/auth"
)

// SessionCfg holds configuration for session middleware.
type SessionCfg struct {
	DB         *gorm.DB
	Roles      auth.RoleResolver
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// Session is a database-backed session model.
type Session struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	UserID     string    `gorm:"type:char(36);not null;index:ix_sessions_user_id"`
	TokenHash  []byte    `gorm:"type:binary(32);not null"`
	ExpiresAt  time.Time `gorm:"type:datetime(3);not null"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt  time.Time `gorm:"type:datetime(3);not null"`
	LastSeenAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Session) TableName() string { return "sessions" }

// SessionMiddleware resolves identity for the request in two phases:
// session row first, then the role for that user. Handlers only run
// after both finished (or failed to anonymous), so none of them can
// observe a half-resolved identity.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		var sess Session
		if err := cfg.DB.Where("id = ? AND expires_at > ?", sessionID, time.Now()).First(&sess).Error; err != nil {
			// Invalid or expired session, clear cookie
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		var userEmail, fullName string
		row := cfg.DB.Table("users").Select("email", "full_name").Where("id = ?", sess.UserID).Row()
		if err := row.Scan(&userEmail, &fullName); err != nil {
			// session points at a deleted user: treat as anonymous
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		role := auth.RoleCustomer
		if cfg.Roles != nil {
			role = cfg.Roles.Resolve(c.Request.Context(), sess.UserID)
		}

		c.Set("session", &sess)
		c.Set("user_id", sess.UserID)
		c.Set("user_email", userEmail)
		c.Set("user_full_name", fullName)
		c.Set("user_role", role)

		c.Next()
	}
}

// CreateSession creates a new session for the given user.
func CreateSession(cfg SessionCfg, userID string) (*Session, error) {
	tokenHash, err := generateTokenHash()
	if err != nil {
		return nil, err
	}
	sess := &Session{
		ID:         uuid.New().String(),
		UserID:     userID,
		TokenHash:  tokenHash,
		ExpiresAt:  time.Now().Add(cfg.TTL),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		LastSeenAt: time.Now(),
	}
	if err := cfg.DB.Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// DeleteSession removes a session by ID.
func DeleteSession(cfg SessionCfg, sessionID string) error {
	return cfg.DB.Delete(&Session{}, "id = ?", sessionID).Error
}

func generateTokenHash() ([]byte, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	return b, err
}

// ContextUser represents the authenticated user stored in request context.
type ContextUser struct {
	ID       string
	Email    string
	FullName string
	Role     string
}

func (u ContextUser) IsAdmin() bool { return u.Role == auth.RoleAdmin }

// CurrentUser retrieves the authenticated user from the gin context.
// Returns the user and true if authenticated, or zero value and false
// otherwise.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return ContextUser{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return ContextUser{}, false
	}

	u := ContextUser{ID: userID, Role: auth.RoleCustomer}
	if v, ok := c.Get("user_email"); ok {
		u.Email, _ = v.(string)
	}
	if v, ok := c.Get("user_full_name"); ok {
		u.FullName, _ = v.(string)
	}
	if v, ok := c.Get("user_role"); ok {
		if s, _ := v.(string); s != "" {
			u.Role = s
		}
	}
	return u, true
}
