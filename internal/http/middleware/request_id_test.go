package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDRig() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	r := newRequestIDRig()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	rid := w.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(rid)
	require.NoError(t, err)
	assert.Equal(t, rid, w.Body.String())
}

func TestRequestIDInboundKept(t *testing.T) {
	r := newRequestIDRig()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "edge-7f3a.01")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "edge-7f3a.01", w.Header().Get(HeaderRequestID))
}

func TestRequestIDInboundJunkReplaced(t *testing.T) {
	r := newRequestIDRig()

	for _, bad := range []string{
		"has space",
		"semi;colon",
		strings.Repeat("a", maxRequestIDLen+1),
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, bad)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		rid := w.Header().Get(HeaderRequestID)
		_, err := uuid.Parse(rid)
		assert.NoError(t, err, "junk %q should be replaced with a UUID", bad)
	}
}

func TestLoggerIncludesUserAndCartCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger(log))
	r.GET("/", func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("user_email", "a@b.co")
		c.Set(cartCountKey, 3)
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	out := buf.String()
	assert.Contains(t, out, `"user_id":"u1"`)
	assert.Contains(t, out, `"cart_count":3`)
	assert.Contains(t, out, `"status":200`)
}
