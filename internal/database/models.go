package database

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the users table model. The domain packages map it to their own
// types so the password hash never leaks through API representations.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Username     string    `bun:"username,notnull,unique"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Review is the reviews table model. AuthorID references users.id and is
// always derived from the authenticated caller, never from request input.
type Review struct {
	bun.BaseModel `bun:"table:reviews,alias:r"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Content   string    `bun:"content,notnull"`
	Rating    int       `bun:"rating,notnull"`
	AuthorID  int64     `bun:"author_id,notnull"`
	HotelID   int64     `bun:"hotel_id,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Hotel is the hotels table model.
type Hotel struct {
	bun.BaseModel `bun:"table:hotels,alias:h"`

	ID               int64  `bun:"id,pk,autoincrement"`
	Name             string `bun:"name,notnull"`
	Description      string `bun:"description"`
	Address          string `bun:"address"`
	Stars            int    `bun:"stars,notnull"`
	PostalCode       string `bun:"postal_code"`
	Municipality     string `bun:"municipality"`
	MunicipalityCode string `bun:"municipality_code"`
	Territory        string `bun:"territory"`
	TerritoryCode    string `bun:"territory_code"`
	Price            int    `bun:"price,notnull"`
	Rooms            int    `bun:"rooms,notnull"`
}
