package domain

import "github.com/google/uuid"

// ChatMessage is one message in a board's chat room. Immutable once created;
// scoped to the board but with its own lifecycle (no cascade on board
// mutation, purged only after board destruction).
type ChatMessage struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_board_id" json:"board_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Text    string    `gorm:"type:text;not null" json:"text"`
}

// TableName specifies the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}
