package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayview/reviews-api/internal/logging"
	"github.com/stayview/reviews-api/internal/user"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users  map[string]*user.User
	nextID int64

	insertErr      error
	findByNameErr  error
	insertedHashes []string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  make(map[string]*user.User),
		nextID: 1,
	}
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*user.User, error) {
	if f.findByNameErr != nil {
		return nil, f.findByNameErr
	}
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id int64) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserStore) Insert(_ context.Context, username, email, passwordHash string) (*user.User, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if _, ok := f.users[username]; ok {
		return nil, user.ErrDuplicateUsername
	}
	for _, u := range f.users {
		if u.Email == email {
			return nil, user.ErrDuplicateEmail
		}
	}

	created := &user.User{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.nextID++
	f.users[username] = created
	f.insertedHashes = append(f.insertedHashes, passwordHash)
	return created, nil
}

func newTestService(t *testing.T, store UserStore) *Service {
	t.Helper()
	return NewService(
		store,
		NewHasher(),
		newTestTokenService(t),
		logging.NewLogger(true),
		30*time.Minute,
	)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(t, store)

		created, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice", created.Username)
		assert.Equal(t, "alice@example.com", created.Email)
		assert.NotEmpty(t, created.PasswordHash)
		assert.NotEqual(t, "password123", created.PasswordHash)
	})

	t.Run("stores hash not plaintext", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(t, store)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)
		require.Len(t, store.insertedHashes, 1)
		assert.NotContains(t, store.insertedHashes[0], "password123")
		assert.True(t, NewHasher().Verify("password123", store.insertedHashes[0]))
	})

	t.Run("validation errors", func(t *testing.T) {
		svc := newTestService(t, newFakeUserStore())

		tests := []struct {
			name     string
			username string
			email    string
			password string
			wantErr  error
		}{
			{"missing username", "", "a@example.com", "password123", ErrUsernameRequired},
			{"missing email", "bob", "", "password123", ErrEmailRequired},
			{"invalid email", "bob", "not-an-email", "password123", ErrInvalidEmailFormat},
			{"missing password", "bob", "bob@example.com", "", ErrPasswordRequired},
			{"short password", "bob", "bob@example.com", "short", ErrPasswordTooShort},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(t, store)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alice", "other@example.com", "password123")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("duplicate email via store constraint", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(t, store)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "bob", "alice@example.com", "password123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues validatable token", func(t *testing.T) {
		store := newFakeUserStore()
		tokens := newTestTokenService(t)
		svc := NewService(store, NewHasher(), tokens, logging.NewLogger(true), 30*time.Minute)

		created, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		token, err := svc.Login(ctx, "alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, "bearer", token.TokenType)
		assert.Equal(t, int64(1800), token.ExpiresIn)

		subjectID, err := tokens.Validate(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, created.ID, subjectID)
	})

	t.Run("failures are indistinguishable", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(t, store)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		// Unknown user and wrong password produce the same error, so a
		// caller cannot probe which usernames exist.
		_, unknownErr := svc.Login(ctx, "nobody", "password123")
		_, wrongPassErr := svc.Login(ctx, "alice", "wrong-password")
		assert.ErrorIs(t, unknownErr, ErrAuthenticationFailed)
		assert.ErrorIs(t, wrongPassErr, ErrAuthenticationFailed)
		assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	})

	t.Run("empty credentials rejected", func(t *testing.T) {
		svc := newTestService(t, newFakeUserStore())

		_, err := svc.Login(ctx, "", "password123")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)

		_, err = svc.Login(ctx, "alice", "")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}
