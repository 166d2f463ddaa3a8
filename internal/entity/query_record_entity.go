package entity

import (
	"time"

	"github.com/google/uuid"
)

// QueryRecord is one executed query in a user's history. Only the two
// favorite fields are ever mutated after creation.
type QueryRecord struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	QueryText    string
	IsFavorite   bool
	FavoriteName *string
	CreatedAt    time.Time
}
