package review

import "time"

type Review struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	AuthorID  int64     `json:"author_id"`
	HotelID   int64     `json:"hotel_id"`
	CreatedAt time.Time `json:"created_at"`
}
