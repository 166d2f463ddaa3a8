package dto

import (
	"time"

	"sql-workbench-be/pkg/rowset"

	"github.com/google/uuid"
)

type ExecuteQueryRequest struct {
	// Emptiness is checked by the statement classifier so the reason
	// matches the rejection wording, hence no validate tag here.
	Query string `json:"query"`
}

type ExecuteQueryResponse struct {
	Message string       `json:"message"`
	Result  []rowset.Row `json:"result"`
	Cached  bool         `json:"cached"`
}

type QueryHistoryItem struct {
	Id           uuid.UUID `json:"id"`
	QueryText    string    `json:"query_text"`
	IsFavorite   bool      `json:"is_favorite"`
	FavoriteName *string   `json:"favorite_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type QueryHistoryResponse struct {
	Message string             `json:"message"`
	History []QueryHistoryItem `json:"history"`
}

type ToggleFavoriteResponse struct {
	Message    string `json:"message"`
	IsFavorite bool   `json:"is_favorite"`
}

type RenameFavoriteRequest struct {
	Name string `json:"name" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DownloadQueryResponse is not a JSON body; the controller streams
// Content as text/csv with an attachment disposition.
type DownloadQueryResponse struct {
	Filename string
	Content  []byte
}
