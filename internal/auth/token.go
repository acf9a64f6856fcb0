package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken   = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpiredToken     = errors.New("token has expired")
)

// TokenService issues and validates signed, time-limited bearer tokens.
// Tokens are stateless: nothing is persisted server-side and there is no
// revocation before expiry, so the configured lifetime should stay short.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokenService builds a token service from the configured signing secret
// and algorithm identifier. Only HMAC algorithms are accepted; asymmetric
// identifiers are rejected at startup rather than at first use.
func NewTokenService(secret []byte, algorithm string) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret must not be empty")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}

	return &TokenService{
		secret: secret,
		method: method,
	}, nil
}

// Issue creates a token for the given subject. The subject id is serialized
// as a string claim so the encoding is stable regardless of numeric type.
// The ttl is a required parameter; callers pass the configured access-token
// lifetime explicitly.
func (s *TokenService) Issue(subjectID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subjectID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Validate verifies signature integrity and expiry and returns the subject
// id. The three failure kinds stay distinguishable for callers even though
// the HTTP layer collapses them to a single 401.
func (s *TokenService) Validate(tokenStr string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpiredToken
		default:
			return 0, ErrMalformedToken
		}
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrMalformedToken
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrMalformedToken
	}

	return subjectID, nil
}
