package apierror

import (
	"errors"
	"net/http"
	"newsnotes/cmd/internal/utils/validators"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username  string `validate:"required,max=5"`
	Password1 string `validate:"required,min=8,notnumeric"`
	Password2 string `validate:"required,eqfield=Password1"`
	Text      string `validate:"nobadwords"`
}

func TestFromValidationError(t *testing.T) {
	validate := validators.New()

	err := validate.Struct(&signupForm{
		Username:  "too-long-name",
		Password1: "12345678",
		Password2: "other",
		Text:      "негодяй",
	})
	require.Error(t, err)

	serr := FromValidationError(err)
	require.NotNil(t, serr)
	assert.Equal(t, http.StatusBadRequest, serr.Code())
	assert.Equal(t, []string{"Ensure this value has at most 5 characters."}, serr.Errors["username"])
	assert.Equal(t, []string{"This password is entirely numeric."}, serr.Errors["password1"])
	assert.Equal(t, []string{PasswordMismatchMessage}, serr.Errors["password2"])
	assert.Equal(t, []string{validators.BadWordsWarning}, serr.Errors["text"])
}

func TestFromValidationErrorIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FromValidationError(errors.New("boom")))
}

func TestStructuredError(t *testing.T) {
	serr := NewStructured(http.StatusBadRequest)
	assert.True(t, serr.Empty())

	serr.Add("slug", "first")
	serr.Add("slug", "second")
	assert.False(t, serr.Empty())
	assert.Equal(t, []string{"first", "second"}, serr.Errors["slug"])

	field := NewFieldError(NonFieldErrors, InvalidLoginMessage)
	assert.Equal(t, []string{InvalidLoginMessage}, field.Errors[NonFieldErrors])
}

func TestNewSimple(t *testing.T) {
	apierr := NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", "id", "int")
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
	assert.Equal(t, "Parameter 'id' has invalid type, expected: int", apierr.Message)
	assert.Equal(t, http.StatusNotFound, NotFoundError.Code())
}
