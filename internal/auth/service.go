package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/stayview/reviews-api/internal/logging"
	"github.com/stayview/reviews-api/internal/user"
)

var (
	// ErrAuthenticationFailed deliberately covers both "no such user" and
	// "wrong password" so login responses cannot be used to enumerate
	// usernames.
	ErrAuthenticationFailed = errors.New("invalid username or password")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

// AccessToken is the login response payload.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Service handles authentication business logic
type Service struct {
	users               UserStore
	hasher              PasswordHasher
	tokens              TokenIssuer
	logger              *logging.Logger
	accessTokenDuration time.Duration
}

func NewService(
	users UserStore,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger *logging.Logger,
	accessTokenDuration time.Duration,
) *Service {
	return &Service{
		users:               users,
		hasher:              hasher,
		tokens:              tokens,
		logger:              logger,
		accessTokenDuration: accessTokenDuration,
	}
}

// Register creates a new user account. The duplicate pre-check is a fast
// path only; the store's unique constraints are the authoritative guard, so
// a constraint violation from the insert maps to the same conflict errors.
func (s *Service) Register(ctx context.Context, username, email, password string) (*user.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(email) > 254 {
		return nil, ErrInvalidEmailFormat
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmailFormat
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.users.Insert(ctx, username, email, passwordHash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Login verifies the credentials and issues an access token bound to the
// user's id.
func (s *Service) Login(ctx context.Context, username, password string) (*AccessToken, error) {
	if username == "" || password == "" {
		return nil, ErrAuthenticationFailed
	}

	existingUser, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(password, existingUser.PasswordHash) {
		return nil, ErrAuthenticationFailed
	}

	token, err := s.tokens.Issue(existingUser.ID, s.accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &AccessToken{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.accessTokenDuration.Seconds()),
	}, nil
}
