package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusByKind(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidErr("bad input", nil), http.StatusBadRequest},
		{UnauthorizedErr("sign in"), http.StatusUnauthorized},
		{ForbiddenErr("nope"), http.StatusForbidden},
		{NotFoundErr("missing"), http.StatusNotFound},
		{ConflictErr("taken"), http.StatusConflict},
		{Wrap(errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "%v", tc.err)
	}
}

func TestPublicMessageNeverLeaksInternal(t *testing.T) {
	err := Wrap(errors.New("dial tcp 10.0.0.5:3306: connection refused"))
	assert.Equal(t, "Something went wrong.", PublicMessage(err))
	assert.NotContains(t, PublicMessage(err), "10.0.0.5")
}

func TestPublicMessagePassesThroughSafeText(t *testing.T) {
	assert.Equal(t, "Invalid email or password.", PublicMessage(UnauthorizedErr("Invalid email or password.")))
	assert.Equal(t, "Something went wrong.", PublicMessage(errors.New("raw")))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil))
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	inner := NotFoundErr("Order not found.")
	wrapped := fmt.Errorf("handler: %w", inner)

	ae, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, NotFound, ae.Kind)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := Wrap(errors.New("boom"))
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), string(Internal))

	assert.Equal(t, string(Invalid), InvalidErr("x", nil).Error())
}
