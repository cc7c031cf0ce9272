package cartcookie

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodec() *Codec {
	return New([]byte("test-secret-key"), "wnm_cart", false)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ck := testCodec()

	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.AddItem("p2", "L", 1)

	v, err := ck.Encode(c)
	require.NoError(t, err)
	assert.Contains(t, v, ".")

	got, err := ck.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, c.Items, got.Items)
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	ck := testCodec()

	c := NewCart()
	c.AddItem("p1", "M", 1)
	v, err := ck.Encode(c)
	require.NoError(t, err)

	parts := strings.SplitN(v, ".", 2)
	forged := parts[0] + "x." + parts[1]

	_, err = ck.Decode(forged)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	ck := testCodec()
	other := New([]byte("another-secret"), "wnm_cart", false)

	c := NewCart()
	c.AddItem("p1", "M", 1)
	v, err := other.Encode(c)
	require.NoError(t, err)

	_, err = ck.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	ck := testCodec()

	for _, v := range []string{"", "no-dot", "a.b.c", "!!!.???"} {
		_, err := ck.Decode(v)
		assert.Error(t, err, "value %q", v)
	}
}

func TestGetMissingCookieReturnsNilNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ck := testCodec()

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)

	cart, err := ck.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, cart)
}

func TestGetForgedCookieClearsAndErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ck := testCodec()

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: "wnm_cart", Value: "forged.value"})

	cart, err := ck.Get(ctx)
	assert.Error(t, err)
	assert.Nil(t, cart)

	// the bad cookie gets expired on the response
	setCookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, "wnm_cart=")
	assert.Contains(t, setCookie, "Max-Age=0")
}

func TestGetValidCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ck := testCodec()

	c := NewCart()
	c.AddItem("p1", "M", 2)
	v, err := ck.Encode(c)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: "wnm_cart", Value: v})

	got, err := ck.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.TotalQuantity())
}

func TestDecodeNilItemsBecomesEmptySlice(t *testing.T) {
	ck := testCodec()

	v, err := ck.Encode(&Cart{})
	require.NoError(t, err)

	got, err := ck.Decode(v)
	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.True(t, got.IsEmpty())
}
