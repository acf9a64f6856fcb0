package review

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/stayview/reviews-api/internal/database"
)

// Repository handles review data persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists a new review as a single atomic statement.
func (r *Repository) Insert(ctx context.Context, content string, rating int, authorID, hotelID int64) (*Review, error) {
	dbReview := &database.Review{
		Content:  content,
		Rating:   rating,
		AuthorID: authorID,
		HotelID:  hotelID,
	}

	_, err := r.db.NewInsert().
		Model(dbReview).
		Returning("*").
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return mapDBReviewToModel(dbReview), nil
}

// List returns reviews ordered by id with offset/limit pagination.
func (r *Repository) List(ctx context.Context, offset, limit int) ([]*Review, error) {
	var dbReviews []*database.Review
	err := r.db.NewSelect().
		Model(&dbReviews).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return mapDBReviewsToModels(dbReviews), nil
}

// ListByHotel returns all reviews for a hotel id.
func (r *Repository) ListByHotel(ctx context.Context, hotelID int64) ([]*Review, error) {
	var dbReviews []*database.Review
	err := r.db.NewSelect().
		Model(&dbReviews).
		Where("hotel_id = ?", hotelID).
		Order("id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by hotel: %w", err)
	}

	return mapDBReviewsToModels(dbReviews), nil
}

func mapDBReviewToModel(dbr *database.Review) *Review {
	return &Review{
		ID:        dbr.ID,
		Content:   dbr.Content,
		Rating:    dbr.Rating,
		AuthorID:  dbr.AuthorID,
		HotelID:   dbr.HotelID,
		CreatedAt: dbr.CreatedAt,
	}
}

func mapDBReviewsToModels(dbReviews []*database.Review) []*Review {
	reviews := make([]*Review, 0, len(dbReviews))
	for _, dbr := range dbReviews {
		reviews = append(reviews, mapDBReviewToModel(dbr))
	}
	return reviews
}
