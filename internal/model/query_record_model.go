package model

import (
	"time"

	"github.com/google/uuid"
)

type QueryRecord struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	QueryText    string    `gorm:"type:text;not null"`
	IsFavorite   bool      `gorm:"not null;default:false"`
	FavoriteName *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (QueryRecord) TableName() string {
	return "queries"
}
