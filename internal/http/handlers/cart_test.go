package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/cartcookie"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	cartmod "github.com/NixonSiagian/studio-archive-craft/internal/modules/cart"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
)

// stubCatalog serves a fixed product set without a database.
type stubCatalog struct {
	products map[string]catalog.Product
}

func (s *stubCatalog) Get(ctx context.Context, id string) (catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubCatalog) GetByIDs(ctx context.Context, ids []string) (map[string]catalog.Product, error) {
	out := make(map[string]catalog.Product, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func newGuestCartRig() (*gin.Engine, *cartcookie.Codec) {
	gin.SetMode(gin.TestMode)

	cat := &stubCatalog{products: map[string]catalog.Product{
		"p1": {
			ID:         "p1",
			Slug:       "ant-man-tee",
			Name:       "ANT MAN",
			PriceCents: 299000,
			Currency:   "IDR",
			Sizes:      datatypes.JSON(`["S","M","L","XL"]`),
			InStock:    true,
			Status:     "active",
		},
	}}
	ck := cartcookie.New([]byte("test-secret"), "wnm_cart", false)
	h := NewCartHandler(ck, nil, cartmod.NewService(nil, cat), cat)

	r := gin.New()
	r.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.GET("/cart", h.Get)
	r.POST("/cart/items", h.Add)
	r.PATCH("/cart/items", h.Update)
	return r, ck
}

func cartCookieFrom(t *testing.T, w *httptest.ResponseRecorder, ck *cartcookie.Codec) *cartcookie.Cart {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == ck.CookieName {
			cart, err := ck.Decode(c.Value)
			require.NoError(t, err)
			return cart
		}
	}
	t.Fatal("cart cookie not set on response")
	return nil
}

func TestGuestAddHasNoUpperQuantityBound(t *testing.T) {
	r, ck := newGuestCartRig()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"product_id":"p1","size":"M","qty":150}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cart := cartCookieFrom(t, w, ck)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 150, cart.Items[0].Qty)

	// the response body reflects the written cart, not the request cookie
	assert.Contains(t, w.Body.String(), `"count":150`)
}

func TestGuestAddAccumulatesAcrossRequests(t *testing.T) {
	r, ck := newGuestCartRig()

	w1 := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"product_id":"p1","size":"M","qty":120}`))
	req1.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w1, req1)
	require.Equal(t, http.StatusOK, w1.Code)

	first := cartCookieFrom(t, w1, ck)
	encoded, err := ck.Encode(first)
	require.NoError(t, err)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"product_id":"p1","size":"M","qty":80}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.AddCookie(&http.Cookie{Name: ck.CookieName, Value: encoded})
	r.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusOK, w2.Code)

	// quantity is the sum of the added quantities, uncapped
	cart := cartCookieFrom(t, w2, ck)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 200, cart.Items[0].Qty)
}

func TestGuestUpdatePassesQuantityThrough(t *testing.T) {
	r, ck := newGuestCartRig()

	seed := cartcookie.NewCart()
	seed.AddItem("p1", "M", 2)
	encoded, err := ck.Encode(seed)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items",
		strings.NewReader(`{"product_id":"p1","size":"M","qty":500}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: ck.CookieName, Value: encoded})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cart := cartCookieFrom(t, w, ck)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 500, cart.Items[0].Qty)
}

func TestGuestAddUnknownSizeRejected(t *testing.T) {
	r, _ := newGuestCartRig()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"product_id":"p1","size":"XXL","qty":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGuestAddUnknownProduct404(t *testing.T) {
	r, _ := newGuestCartRig()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"product_id":"ghost","size":"M","qty":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
