package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid cart cookie")

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json).base64(hmac)
func (c *Codec) Encode(cart *Cart) (string, error) {
	b, err := json.Marshal(cart)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (*Cart, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var cart Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, ErrInvalid
	}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return &cart, nil
}

// Get reads the guest cart from the request. A missing, forged or
// unreadable cookie yields (nil, err); callers fall back to an empty
// cart — a bad cookie never blocks the request.
func (c *Codec) Get(ctx *gin.Context) (*Cart, error) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return nil, nil
	}
	cart, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return nil, err
	}
	return cart, nil
}

func (c *Codec) Set(ctx *gin.Context, cart *Cart) {
	val, err := c.Encode(cart)
	if err != nil {
		return
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
