package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warroom-board-api/internal/domain"
)

// ChatMessageRepository defines append-only access to board chat history
type ChatMessageRepository interface {
	Create(ctx context.Context, message *domain.ChatMessage) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error)
	DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error
	DeleteOrphaned(ctx context.Context) (int64, error)
}

// chatMessageRepositoryImpl is the GORM implementation of ChatMessageRepository
type chatMessageRepositoryImpl struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new instance of ChatMessageRepository
func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepositoryImpl{db: db}
}

// Create appends one chat message
func (r *chatMessageRepositoryImpl) Create(ctx context.Context, message *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// FindByBoardID lists a board's chat history oldest-first, unlike the
// activity trail which reads newest-first.
func (r *chatMessageRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error) {
	var messages []*domain.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteByBoardID removes all chat messages for a destroyed board
func (r *chatMessageRepositoryImpl) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ChatMessage{}, "board_id = ?", boardID).Error
}

// DeleteOrphaned removes chat messages whose board no longer exists
func (r *chatMessageRepositoryImpl) DeleteOrphaned(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM chat_messages WHERE board_id NOT IN (SELECT id FROM boards)")
	return res.RowsAffected, res.Error
}
