package dto

import (
	"time"

	"github.com/google/uuid"
)

// SendMessageRequest represents a chat message sent to a board room
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// ChatMessageResponse represents one persisted chat message
type ChatMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	BoardID   uuid.UUID `json:"boardId"`
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
