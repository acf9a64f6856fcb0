package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/stayview/reviews-api/internal/logging"
	"github.com/stayview/reviews-api/internal/user"
)

var (
	// ErrPersistence marks store failures on writes. These stem from
	// malformed or duplicate input and are surfaced as client errors;
	// they are never retried.
	ErrPersistence = errors.New("failed to persist review")

	// ErrNoReviews is returned when a hotel has no reviews at all.
	ErrNoReviews = errors.New("no reviews found for the specified hotel")
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Store defines the persistence operations the review service depends on.
// Implemented by Repository.
type Store interface {
	Insert(ctx context.Context, content string, rating int, authorID, hotelID int64) (*Review, error)
	List(ctx context.Context, offset, limit int) ([]*Review, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]*Review, error)
}

// Service handles review business logic
type Service struct {
	store  Store
	logger *logging.Logger
}

func NewService(store Store, logger *logging.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Create persists a review authored by the authenticated user. The author id
// always comes from the resolved identity, never from client input, so a
// caller cannot author a review as someone else.
func (s *Service) Create(ctx context.Context, author *user.User, content string, rating int, hotelID int64) (*Review, error) {
	created, err := s.store.Insert(ctx, content, rating, author.ID, hotelID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return created, nil
}

// List returns a page of reviews. Limit defaults to 100 and is capped.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*Review, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return s.store.List(ctx, offset, limit)
}

// ListByHotel returns all reviews for a hotel. An empty result is an error
// so the boundary can answer 404, matching the public contract.
func (s *Service) ListByHotel(ctx context.Context, hotelID int64) ([]*Review, error) {
	reviews, err := s.store.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, ErrNoReviews
	}

	return reviews, nil
}
