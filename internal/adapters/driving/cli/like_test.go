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

func TestLikeCmd_Use(t *testing.T) {
	assert.Equal(t, "like [provider-id]", likeCmd.Use)
}

func TestLikeCmd_Short(t *testing.T) {
	assert.Equal(t, "Toggle a like on a provider", likeCmd.Short)
}

func TestLikeCmd_HasCategoryFlag(t *testing.T) {
	flag := likeCmd.Flags().Lookup("category")
	require.NotNil(t, flag, "category flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
}

func TestLikeCmd_RequiresCategoryFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"like", "p1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestLikeCmd_Likes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	store := newStubStore(stubProviders()...)
	collectionStore = store
	likeService = &stubLikes{
		toggleFunc: func(_ context.Context, providerID string) error {
			p, err := store.Get(providerID)
			if err != nil {
				return err
			}
			p.CurrentUserLiked = true
			p.NumLikes++
			store.Put(*p)
			store.SetLiked(providerID, true)
			return nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"like", "p1", "--category", "cleaning"})
	defer func() {
		rootCmd.SetArgs(nil)
		likeCategory = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Liked Acme Cleaning (4 likes)")
}

func TestLikeCmd_Unlikes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	providers := stubProviders()
	providers[0].CurrentUserLiked = true
	providers[0].NumLikes = 4
	store := newStubStore(providers...)
	collectionStore = store
	likeService = &stubLikes{
		toggleFunc: func(_ context.Context, providerID string) error {
			p, err := store.Get(providerID)
			if err != nil {
				return err
			}
			p.CurrentUserLiked = false
			p.NumLikes--
			store.Put(*p)
			store.SetLiked(providerID, false)
			return nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"like", "p1", "-c", "cleaning"})
	defer func() {
		rootCmd.SetArgs(nil)
		likeCategory = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Unliked Acme Cleaning (3 likes)")
}

func TestLikeCmd_UnknownCategory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"like", "p1", "--category", "plumbing"})
	defer func() {
		rootCmd.SetArgs(nil)
		likeCategory = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "plumbing"`)
}

func TestLikeCmd_ToggleError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	likeService = &stubLikes{
		toggleFunc: func(context.Context, string) error {
			return errors.New("please sign in again")
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"like", "p1", "--category", "cleaning"})
	defer func() {
		rootCmd.SetArgs(nil)
		likeCategory = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "toggling like")
	assert.Contains(t, err.Error(), "please sign in again")
}

func TestLikeCmd_UnknownProvider(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"like", "missing", "--category", "cleaning"})
	defer func() {
		rootCmd.SetArgs(nil)
		likeCategory = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLikeCmd_ServicesNotConfigured(t *testing.T) {
	oldLikes := likeService
	likeService = nil
	defer func() {
		likeService = oldLikes
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"like", "p1", "--category", "cleaning"})
	defer func() {
		rootCmd.SetArgs(nil)
		likeCategory = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "services not configured")
}
