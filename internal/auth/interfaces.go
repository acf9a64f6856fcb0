package auth

import (
	"context"
	"time"

	"github.com/stayview/reviews-api/internal/user"
)

// UserStore defines the credential-store operations the auth core depends on.
// Implemented by user.Repository.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	Insert(ctx context.Context, username, email, passwordHash string) (*user.User, error)
}

// TokenValidator is the subset of TokenService the identity resolver needs.
type TokenValidator interface {
	Validate(token string) (int64, error)
}

// TokenIssuer is the subset of TokenService the login flow needs.
type TokenIssuer interface {
	Issue(subjectID int64, ttl time.Duration) (string, error)
}

// PasswordHasher abstracts one-way password hashing and verification.
// Implemented by Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}
