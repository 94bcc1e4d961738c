package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search recommendations across all categories", searchCmd.Short)
}

func TestSearchCmd_Long(t *testing.T) {
	assert.Contains(t, searchCmd.Long, "de-duplicated")
	assert.Contains(t, searchCmd.Long, "--state")
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasStateFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("state")
	require.NotNil(t, flag, "state flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var gotQuery, gotState string
	catalogService = &stubCatalog{
		searchFunc: func(_ context.Context, query, state string) ([]domain.Provider, error) {
			gotQuery = query
			gotState = state
			return stubProviders(), nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "plumber"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "plumber", gotQuery)
	assert.Empty(t, gotState)
	assert.Contains(t, buf.String(), `Results for "plumber" (2)`)
	assert.Contains(t, buf.String(), "Acme Cleaning")
}

func TestSearchCmd_StateScope(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var gotState string
	catalogService = &stubCatalog{
		searchFunc: func(_ context.Context, _, state string) ([]domain.Provider, error) {
			gotState = state
			return nil, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "plumber", "--state", "WA"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchState = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "WA", gotState)
	assert.Contains(t, buf.String(), "No recommendations yet")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "cleaning"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"ID": "p1"`)
	assert.Contains(t, buf.String(), `"BusinessName": "Acme Cleaning"`)
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	oldService := catalogService
	catalogService = nil
	defer func() {
		catalogService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "plumber"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog service not configured")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	catalogService = &stubCatalog{
		searchFunc: func(context.Context, string, string) ([]domain.Provider, error) {
			return nil, errors.New("request timed out")
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "plumber"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
	assert.Contains(t, err.Error(), "request timed out")
}
