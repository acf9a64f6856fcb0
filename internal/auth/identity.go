package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/stayview/reviews-api/internal/logging"
	"github.com/stayview/reviews-api/internal/user"
)

var (
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnknownSubject means the token verified but its subject no longer
	// exists. Worth telling apart in logs from a bad token: it points at
	// stale data rather than tampering.
	ErrUnknownSubject = errors.New("token subject does not exist")
)

// Resolver turns a bearer token into an authenticated user. One credential
// store read per call; results are never cached across requests so revoked
// or deleted accounts are seen immediately.
type Resolver struct {
	tokens TokenValidator
	users  UserStore
}

func NewResolver(tokens TokenValidator, users UserStore) *Resolver {
	return &Resolver{
		tokens: tokens,
		users:  users,
	}
}

// Resolve validates the token and loads the subject from the credential
// store. Any token-validation failure collapses to ErrUnauthenticated; the
// underlying kind is preserved in the log.
func (r *Resolver) Resolve(ctx context.Context, token string) (*user.User, error) {
	logger := logging.GetLoggerFromContext(ctx)

	subjectID, err := r.tokens.Validate(token)
	if err != nil {
		logger.Warn("token validation failed", "error", err.Error())
		return nil, ErrUnauthenticated
	}

	resolved, err := r.users.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			logger.Warn("valid token for missing user", "subject_id", subjectID)
			return nil, ErrUnknownSubject
		}
		return nil, fmt.Errorf("failed to load token subject: %w", err)
	}

	return resolved, nil
}
