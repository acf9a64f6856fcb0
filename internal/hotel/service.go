package hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/stayview/reviews-api/internal/logging"
)

var (
	ErrNameRequired  = errors.New("hotel name is required")
	ErrInvalidStars  = errors.New("stars must be between 1 and 5")
	ErrNoHotelsFound = errors.New("no hotels found for the specified filter")
)

// Price and room counts are derived from the star rating, not stored input.
func priceForStars(stars int) int { return stars * 100 }
func roomsForStars(stars int) int { return stars * 150 }

// Store defines the persistence operations the hotel service depends on.
// Implemented by Repository.
type Store interface {
	Insert(ctx context.Context, h *Hotel) (*Hotel, error)
	Update(ctx context.Context, h *Hotel) error
	FindByID(ctx context.Context, id int64) (*Hotel, error)
	List(ctx context.Context) ([]*Hotel, error)
	ListByMunicipalityCode(ctx context.Context, code string) ([]*Hotel, error)
	ListByTerritoryCode(ctx context.Context, code string) ([]*Hotel, error)
	ListByMunicipalityName(ctx context.Context, name string) ([]*Hotel, error)
	ListByTerritoryName(ctx context.Context, name string) ([]*Hotel, error)
	Municipalities(ctx context.Context) ([]string, error)
	Territories(ctx context.Context) ([]string, error)
}

// CreateInput carries the client-supplied hotel fields. Price and rooms are
// always recomputed from the star rating.
type CreateInput struct {
	Name             string
	Description      string
	Address          string
	Stars            int
	PostalCode       string
	Municipality     string
	MunicipalityCode string
	Territory        string
	TerritoryCode    string
}

// UpdateInput carries optional field updates; nil pointers leave the current
// value untouched.
type UpdateInput struct {
	Name             *string
	Description      *string
	Address          *string
	Stars            *int
	PostalCode       *string
	Municipality     *string
	MunicipalityCode *string
	Territory        *string
	TerritoryCode    *string
}

// Service handles hotel catalog business logic
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

// Create validates the input, derives price and rooms from the star rating
// and persists the hotel.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Hotel, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Stars < 1 || input.Stars > 5 {
		return nil, ErrInvalidStars
	}

	created, err := s.store.Insert(ctx, &Hotel{
		Name:             input.Name,
		Description:      input.Description,
		Address:          input.Address,
		Stars:            input.Stars,
		PostalCode:       input.PostalCode,
		Municipality:     input.Municipality,
		MunicipalityCode: input.MunicipalityCode,
		Territory:        input.Territory,
		TerritoryCode:    input.TerritoryCode,
		Price:            priceForStars(input.Stars),
		Rooms:            roomsForStars(input.Stars),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}

	return created, nil
}

// Update applies the provided fields to an existing hotel. When the star
// rating changes, price and rooms are recomputed.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*Hotel, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		current.Name = *input.Name
	}
	if input.Description != nil {
		current.Description = *input.Description
	}
	if input.Address != nil {
		current.Address = *input.Address
	}
	if input.PostalCode != nil {
		current.PostalCode = *input.PostalCode
	}
	if input.Municipality != nil {
		current.Municipality = *input.Municipality
	}
	if input.MunicipalityCode != nil {
		current.MunicipalityCode = *input.MunicipalityCode
	}
	if input.Territory != nil {
		current.Territory = *input.Territory
	}
	if input.TerritoryCode != nil {
		current.TerritoryCode = *input.TerritoryCode
	}
	if input.Stars != nil {
		if *input.Stars < 1 || *input.Stars > 5 {
			return nil, ErrInvalidStars
		}
		current.Stars = *input.Stars
		current.Price = priceForStars(*input.Stars)
		current.Rooms = roomsForStars(*input.Stars)
	}

	if err := s.store.Update(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

// Get returns a hotel by id.
func (s *Service) Get(ctx context.Context, id int64) (*Hotel, error) {
	return s.store.FindByID(ctx, id)
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]*Hotel, error) {
	return s.store.List(ctx)
}

// Filter kinds for ListBy.
const (
	ByMunicipalityCode = "municipality_code"
	ByTerritoryCode    = "territory_code"
	ByMunicipalityName = "municipality"
	ByTerritoryName    = "territory"
)

// ListBy returns hotels matching a location filter. An empty result is an
// error so the boundary can answer 404.
func (s *Service) ListBy(ctx context.Context, filter, value string) ([]*Hotel, error) {
	var (
		hotels []*Hotel
		err    error
	)

	switch filter {
	case ByMunicipalityCode:
		hotels, err = s.store.ListByMunicipalityCode(ctx, value)
	case ByTerritoryCode:
		hotels, err = s.store.ListByTerritoryCode(ctx, value)
	case ByMunicipalityName:
		hotels, err = s.store.ListByMunicipalityName(ctx, value)
	case ByTerritoryName:
		hotels, err = s.store.ListByTerritoryName(ctx, value)
	default:
		return nil, fmt.Errorf("unknown hotel filter %q", filter)
	}

	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, ErrNoHotelsFound
	}

	return hotels, nil
}

// Municipalities returns the distinct municipality names.
func (s *Service) Municipalities(ctx context.Context) ([]string, error) {
	return s.store.Municipalities(ctx)
}

// Territories returns the distinct territory names.
func (s *Service) Territories(ctx context.Context) ([]string, error) {
	return s.store.Territories(ctx)
}
