package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

func TestFromBindErrorMapsToJSONKeys(t *testing.T) {
	v := validator.New()
	err := v.Struct(signupForm{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	fields := FromBindError(err, &signupForm{})

	assert.Equal(t, "Enter a valid email address.", fields["email"])
	assert.Equal(t, "Must be at least 8 characters.", fields["password"])
	assert.Equal(t, "This field is required.", fields["full_name"])
}

func TestFromBindErrorNonValidationError(t *testing.T) {
	fields := FromBindError(errors.New("unexpected EOF"), &signupForm{})

	assert.Equal(t, "Invalid form data.", fields["_"])
}

type untaggedForm struct {
	Token string `validate:"required"`
}

func TestFromBindErrorFallsBackToLowercaseFieldName(t *testing.T) {
	v := validator.New()
	err := v.Struct(untaggedForm{})
	require.Error(t, err)

	fields := FromBindError(err, &untaggedForm{})
	assert.Equal(t, "This field is required.", fields["token"])
}

type statusForm struct {
	Status string `json:"status" validate:"required,oneof=pending paid failed"`
}

func TestFromBindErrorOneofMessage(t *testing.T) {
	v := validator.New()
	err := v.Struct(statusForm{Status: "shipped"})
	require.Error(t, err)

	fields := FromBindError(err, &statusForm{})
	assert.Equal(t, "Must be one of: pending paid failed.", fields["status"])
}
