package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/stayview/reviews-api/internal/httputil"
	"github.com/stayview/reviews-api/internal/user"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const userContextKey ContextKey = "authenticated_user"

// Middleware handles authentication for protected routes
type Middleware struct {
	resolver *Resolver
}

func NewMiddleware(resolver *Resolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// RequireAuth validates the bearer token and resolves the authenticated user
// into the request context. All identity failures collapse to 401 at this
// boundary.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondErrorWithCode(w, "invalid authorization header format", httputil.CodeInvalidAuthHeader, http.StatusUnauthorized)
			return
		}

		resolved, err := m.resolver.Resolve(r.Context(), parts[1])
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrUnknownSubject) {
				httputil.RespondErrorWithCode(w, "invalid or expired token", httputil.CodeInvalidToken, http.StatusUnauthorized)
				return
			}
			httputil.RespondErrorWithCode(w, "failed to authenticate request", httputil.CodeInternalError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), resolved)))
	})
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	return u, ok
}
