package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogResponse represents one audit record, listed newest-first
type ActivityLogResponse struct {
	ID        uuid.UUID              `json:"id"`
	BoardID   uuid.UUID              `json:"boardId"`
	UserID    uuid.UUID              `json:"userId"`
	Action    string                 `json:"action"`
	Meta      map[string]interface{} `json:"meta"`
	CreatedAt time.Time              `json:"createdAt"`
}
