package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("directives.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "directives.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "directives.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("embed.json", 0, stdErrors.New("bad json"))
	require.Equal(t, "parse error: embed.json: bad json", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("properties.pa", "alias must expand to at least one property", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "properties.pa", validationErr.Field)
	require.Contains(t, validationErr.Message, "at least one property")
	require.Contains(t, err.Error(), "properties.pa")
}

func TestFetchErrorIncludesStatus(t *testing.T) {
	t.Parallel()

	err := NewFetchError("https://example.com", 404, nil)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, 404, fetchErr.StatusCode)
	require.Contains(t, err.Error(), "status 404")
}

func TestFetchErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewFetchError("https://example.com", 0, underlying)

	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "connection refused")
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var fetchErr *FetchError

	require.Equal(t, "", parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Equal(t, "", validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Equal(t, "", fetchErr.Error())
	require.Nil(t, fetchErr.Unwrap())
}
