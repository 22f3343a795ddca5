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
	err := NewParseError("themes.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "themes.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: themes.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("themes.toml", 0, stdErrors.New("bad"))
	require.Equal(t, "parse error: themes.toml: bad", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("themes.brand.colors.primary", "must be a string", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "themes.brand.colors.primary", validationErr.Field)
	require.Contains(t, validationErr.Error(), "must be a string")
}

func TestStorageErrorIncludesBackendAndKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewStorageError("file", "set", "@thematic/themeName", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "file", storageErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `"@thematic/themeName"`)
}

func TestUsageErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	sentinel := stdErrors.New("no store")
	err := NewUsageError("store.Use", sentinel)

	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, "store.Use", usageErr.Op)
	require.True(t, stdErrors.Is(err, sentinel))
	require.Equal(t, "usage error [store.Use]: no store", err.Error())
}
