package errors

import (
	stdErrors "errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("colormix.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "colormix.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "colormix.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("colormix.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: colormix.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("Config.Swatch.Width", "must be at least 4", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "Config.Swatch.Width", validationErr.Field)
	require.Contains(t, err.Error(), "must be at least 4")
}

func TestInvalidChannelInputErrorCarriesContext(t *testing.T) {
	t.Parallel()

	_, parseErr := strconv.ParseFloat("abc", 64)
	err := NewInvalidChannelInputError("red", "abc", parseErr)

	var inputErr *InvalidChannelInputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, "red", inputErr.Channel)
	require.Equal(t, "abc", inputErr.Input)
	require.Equal(t, InvalidChannelInputMessage, inputErr.Message())
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.Contains(t, err.Error(), `"abc"`)
}

func TestInvalidChannelInputErrorOutOfRangeHasNoCause(t *testing.T) {
	t.Parallel()

	err := NewInvalidChannelInputError("", "999", nil)
	require.Nil(t, stdErrors.Unwrap(err))
	require.Equal(t, `invalid input "999": value must be between 0 and 255`, err.Error())
}
