package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/rentalease/pkg/apperror"
)

func TestKindStatus(t *testing.T) {
	cases := map[apperror.Kind]int{
		apperror.KindValidation:   http.StatusBadRequest,
		apperror.KindConflict:     http.StatusBadRequest,
		apperror.KindUnauthorized: http.StatusUnauthorized,
		apperror.KindForbidden:    http.StatusForbidden,
		apperror.KindNotFound:     http.StatusNotFound,
		apperror.KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.Status(), kind.String())
	}
}

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", apperror.NotFound("Hosting not found"))

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.NotErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestFromWrapsUnknownAsInternal(t *testing.T) {
	cause := errors.New("connection refused")
	e := apperror.From(cause)

	assert.Equal(t, apperror.KindInternal, e.Kind)
	assert.Equal(t, "Server error", e.Message)
	assert.ErrorIs(t, e, cause)
}

func TestValidationFields(t *testing.T) {
	e := apperror.ValidationFields(map[string]string{"email": "The email field is required."})

	assert.ErrorIs(t, e, apperror.ErrValidation)
	assert.Equal(t, "The email field is required.", e.Fields["email"])
}
