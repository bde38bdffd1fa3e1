package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentalease/pkg/bind"
)

type guestsInput struct {
	Guests bind.Int `json:"guests" validate:"required,gte=1"`
}

func TestIntAcceptsNumbersAndNumericStrings(t *testing.T) {
	cases := map[string]bind.Int{
		`{"guests":3}`:      3,
		`{"guests":"3"}`:    3,
		`{"guests":" 12 "}`: 12,
		`{"guests":2.0}`:    2,
		`{"guests":"4.0"}`:  4,
	}
	for body, want := range cases {
		var in guestsInput
		require.NoError(t, bind.Decode(post(body), &in), body)
		assert.Equal(t, want, in.Guests, body)
		assert.Empty(t, bind.Struct(in), body)
	}
}

func TestIntEmptyIsRequired(t *testing.T) {
	for _, body := range []string{`{"guests":""}`, `{"guests":null}`, `{}`} {
		var in guestsInput
		require.NoError(t, bind.Decode(post(body), &in), body)
		assert.Equal(t, "The guests field is required.", bind.Struct(in)["guests"], body)
	}
}

func TestIntRejectsNonNumbers(t *testing.T) {
	for _, body := range []string{`{"guests":"two"}`, `{"guests":2.5}`, `{"guests":true}`} {
		var in guestsInput
		assert.ErrorContains(t, bind.Decode(post(body), &in), "invalid JSON", body)
	}
}

func TestIntRangeMessageTreatsItAsNumber(t *testing.T) {
	var in guestsInput
	require.NoError(t, bind.Decode(post(`{"guests":"-1"}`), &in))
	assert.Equal(t, "The guests must be greater than or equal to 1.", bind.Struct(in)["guests"])
}
