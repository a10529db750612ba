package tokenstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weddingtools/rsvpkit/pkg/tokenstore"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		s := tokenstore.NewMemory()
		defer s.Close()

		require.NoError(t, s.Set(t.Context(), "k", "v"))
		got, err := s.Get(t.Context(), "k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		t.Parallel()
		s := tokenstore.NewMemory()
		defer s.Close()

		_, err := s.Get(t.Context(), "absent")
		require.ErrorIs(t, err, tokenstore.ErrNotFound)
	})

	t.Run("delete removes key", func(t *testing.T) {
		t.Parallel()
		s := tokenstore.NewMemory()
		defer s.Close()

		require.NoError(t, s.Set(t.Context(), "k", "v"))
		require.NoError(t, s.Delete(t.Context(), "k"))
		_, err := s.Get(t.Context(), "k")
		require.ErrorIs(t, err, tokenstore.ErrNotFound)
	})

	t.Run("delete of absent key is not an error", func(t *testing.T) {
		t.Parallel()
		s := tokenstore.NewMemory()
		defer s.Close()

		require.NoError(t, s.Delete(t.Context(), "absent"))
	})

	t.Run("clear removes everything", func(t *testing.T) {
		t.Parallel()
		s := tokenstore.NewMemory()
		defer s.Close()

		require.NoError(t, s.Set(t.Context(), "a", "1"))
		require.NoError(t, s.Set(t.Context(), "b", "2"))
		require.NoError(t, s.Clear(t.Context()))

		_, err := s.Get(t.Context(), "a")
		require.ErrorIs(t, err, tokenstore.ErrNotFound)
		_, err = s.Get(t.Context(), "b")
		require.ErrorIs(t, err, tokenstore.ErrNotFound)
	})

	t.Run("session TTL expires tokens", func(t *testing.T) {
		t.Parallel()
		s := tokenstore.NewMemory(
			tokenstore.WithSessionTTL(20 * time.Millisecond),
			tokenstore.WithCleanupInterval(5 * time.Millisecond),
		)
		defer s.Close()

		require.NoError(t, s.Set(t.Context(), "k", "v"))
		time.Sleep(50 * time.Millisecond)

		_, err := s.Get(t.Context(), "k")
		require.ErrorIs(t, err, tokenstore.ErrNotFound)
	})

	t.Run("operations after close return ErrClosed", func(t *testing.T) {
		t.Parallel()
		s := tokenstore.NewMemory()
		require.NoError(t, s.Close())
		require.NoError(t, s.Close()) // idempotent

		assert.ErrorIs(t, s.Set(t.Context(), "k", "v"), tokenstore.ErrClosed)
		assert.ErrorIs(t, s.Delete(t.Context(), "k"), tokenstore.ErrClosed)
		assert.ErrorIs(t, s.Clear(t.Context()), tokenstore.ErrClosed)
	})
}

func TestTokens(t *testing.T) {
	t.Parallel()

	t.Run("guest token round trip", func(t *testing.T) {
		t.Parallel()
		tokens := tokenstore.NewTokens(nil)
		defer tokens.Close()

		require.NoError(t, tokens.SetToken(t.Context(), "t1"))
		assert.Equal(t, "t1", tokens.Token(t.Context()))

		require.NoError(t, tokens.ClearToken(t.Context()))
		assert.Empty(t, tokens.Token(t.Context()))
	})

	t.Run("missing token is empty, not an error", func(t *testing.T) {
		t.Parallel()
		tokens := tokenstore.NewTokens(nil)
		defer tokens.Close()

		assert.Empty(t, tokens.Token(t.Context()))
		assert.Empty(t, tokens.AdminToken(t.Context()))
	})

	t.Run("guest and admin tokens are independent", func(t *testing.T) {
		t.Parallel()
		tokens := tokenstore.NewTokens(nil)
		defer tokens.Close()

		require.NoError(t, tokens.SetToken(t.Context(), "guest"))
		require.NoError(t, tokens.SetAdminToken(t.Context(), "admin"))

		require.NoError(t, tokens.ClearToken(t.Context()))
		assert.Empty(t, tokens.Token(t.Context()))
		assert.Equal(t, "admin", tokens.AdminToken(t.Context()))

		require.NoError(t, tokens.ClearAdminToken(t.Context()))
		assert.Empty(t, tokens.AdminToken(t.Context()))
	})
}
