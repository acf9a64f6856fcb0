package hotel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/stayview/reviews-api/internal/database"
)

var ErrNotFound = errors.New("hotel not found")

// Repository handles hotel data persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists a new hotel.
func (r *Repository) Insert(ctx context.Context, h *Hotel) (*Hotel, error) {
	dbHotel := mapModelToDBHotel(h)

	_, err := r.db.NewInsert().
		Model(dbHotel).
		Returning("*").
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}

	return mapDBHotelToModel(dbHotel), nil
}

// Update overwrites an existing hotel row.
func (r *Repository) Update(ctx context.Context, h *Hotel) error {
	result, err := r.db.NewUpdate().
		Model(mapModelToDBHotel(h)).
		WherePK().
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update hotel: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// FindByID retrieves a hotel by ID
func (r *Repository) FindByID(ctx context.Context, id int64) (*Hotel, error) {
	dbHotel := new(database.Hotel)
	err := r.db.NewSelect().
		Model(dbHotel).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hotel by id: %w", err)
	}

	return mapDBHotelToModel(dbHotel), nil
}

// List returns all hotels ordered by id.
func (r *Repository) List(ctx context.Context) ([]*Hotel, error) {
	return r.listWhere(ctx, "", nil)
}

// ListByMunicipalityCode returns hotels in the given municipality code.
func (r *Repository) ListByMunicipalityCode(ctx context.Context, code string) ([]*Hotel, error) {
	return r.listWhere(ctx, "municipality_code = ?", code)
}

// ListByTerritoryCode returns hotels in the given territory code.
func (r *Repository) ListByTerritoryCode(ctx context.Context, code string) ([]*Hotel, error) {
	return r.listWhere(ctx, "territory_code = ?", code)
}

// ListByMunicipalityName returns hotels in the named municipality.
func (r *Repository) ListByMunicipalityName(ctx context.Context, name string) ([]*Hotel, error) {
	return r.listWhere(ctx, "municipality = ?", name)
}

// ListByTerritoryName returns hotels in the named territory.
func (r *Repository) ListByTerritoryName(ctx context.Context, name string) ([]*Hotel, error) {
	return r.listWhere(ctx, "territory = ?", name)
}

func (r *Repository) listWhere(ctx context.Context, where string, arg any) ([]*Hotel, error) {
	var dbHotels []*database.Hotel
	query := r.db.NewSelect().
		Model(&dbHotels).
		Order("id ASC")
	if where != "" {
		query = query.Where(where, arg)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	hotels := make([]*Hotel, 0, len(dbHotels))
	for _, dbh := range dbHotels {
		hotels = append(hotels, mapDBHotelToModel(dbh))
	}
	return hotels, nil
}

// Municipalities returns the distinct municipality names.
func (r *Repository) Municipalities(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "municipality")
}

// Territories returns the distinct territory names.
func (r *Repository) Territories(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "territory")
}

func (r *Repository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.NewSelect().
		Model((*database.Hotel)(nil)).
		ColumnExpr("DISTINCT ?", bun.Ident(column)).
		OrderExpr("?", bun.Ident(column)).
		Scan(ctx, &values)

	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}

	return values, nil
}

func mapModelToDBHotel(h *Hotel) *database.Hotel {
	return &database.Hotel{
		ID:               h.ID,
		Name:             h.Name,
		Description:      h.Description,
		Address:          h.Address,
		Stars:            h.Stars,
		PostalCode:       h.PostalCode,
		Municipality:     h.Municipality,
		MunicipalityCode: h.MunicipalityCode,
		Territory:        h.Territory,
		TerritoryCode:    h.TerritoryCode,
		Price:            h.Price,
		Rooms:            h.Rooms,
	}
}

func mapDBHotelToModel(dbh *database.Hotel) *Hotel {
	return &Hotel{
		ID:               dbh.ID,
		Name:             dbh.Name,
		Description:      dbh.Description,
		Address:          dbh.Address,
		Stars:            dbh.Stars,
		PostalCode:       dbh.PostalCode,
		Municipality:     dbh.Municipality,
		MunicipalityCode: dbh.MunicipalityCode,
		Territory:        dbh.Territory,
		TerritoryCode:    dbh.TerritoryCode,
		Price:            dbh.Price,
		Rooms:            dbh.Rooms,
	}
}
