package structs

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Order     int64     `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCategory carries a client-supplied slug only so the field can be
// ignored: the slug is always regenerated from the name at write time.
type CreateCategory struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Order  int64  `json:"order"`
	Active *bool  `json:"active"`
}
