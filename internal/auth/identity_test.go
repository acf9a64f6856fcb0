package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*Resolver, *TokenService, *fakeUserStore) {
		t.Helper()
		store := newFakeUserStore()
		tokens := newTestTokenService(t)
		return NewResolver(tokens, store), tokens, store
	}

	t.Run("success", func(t *testing.T) {
		resolver, tokens, store := setup(t)

		created, err := store.Insert(ctx, "alice", "alice@example.com", "hash")
		require.NoError(t, err)

		token, err := tokens.Issue(created.ID, time.Minute)
		require.NoError(t, err)

		resolved, err := resolver.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resolved.ID)
		assert.Equal(t, "alice", resolved.Username)
	})

	t.Run("invalid token", func(t *testing.T) {
		resolver, _, _ := setup(t)

		_, err := resolver.Resolve(ctx, "garbage")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		resolver, tokens, store := setup(t)

		created, err := store.Insert(ctx, "alice", "alice@example.com", "hash")
		require.NoError(t, err)

		token, err := tokens.Issue(created.ID, -time.Minute)
		require.NoError(t, err)

		_, err = resolver.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("valid token for deleted user", func(t *testing.T) {
		resolver, tokens, _ := setup(t)

		// Subject never existed in the store
		token, err := tokens.Issue(999, time.Minute)
		require.NoError(t, err)

		_, err = resolver.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrUnknownSubject)
	})
}
