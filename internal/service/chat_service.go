package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/metrics"
	"warroom-board-api/internal/repository"
	"warroom-board-api/internal/response"
)

// ChatService persists board chat messages and fans them out to the room
type ChatService interface {
	SendMessage(ctx context.Context, userID, boardID uuid.UUID, text string) (*dto.ChatMessageResponse, error)
	GetHistory(ctx context.Context, userID, boardID uuid.UUID, limit, offset int) ([]*dto.ChatMessageResponse, error)
	CanJoin(ctx context.Context, userID, boardID uuid.UUID) error
}

type chatServiceImpl struct {
	boardRepo   repository.BoardRepository
	chatRepo    repository.ChatMessageRepository
	broadcaster EventBroadcaster
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewChatService creates a new instance of ChatService
func NewChatService(
	boardRepo repository.BoardRepository,
	chatRepo repository.ChatMessageRepository,
	broadcaster EventBroadcaster,
	m *metrics.Metrics,
	logger *zap.Logger,
) ChatService {
	return &chatServiceImpl{
		boardRepo:   boardRepo,
		chatRepo:    chatRepo,
		broadcaster: broadcaster,
		metrics:     m,
		logger:      logger,
	}
}

// SendMessage persists the message and broadcasts it to everyone in the room,
// the sender included.
func (s *chatServiceImpl) SendMessage(ctx context.Context, userID, boardID uuid.UUID, text string) (*dto.ChatMessageResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Message text must not be empty", "")
	}

	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	message := &domain.ChatMessage{
		BoardID: boardID,
		UserID:  userID,
		Text:    text,
	}
	if err := s.chatRepo.Create(ctx, message); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store chat message", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementChatMessage()
	}

	resp := toChatMessageResponse(message)
	s.broadcaster.BroadcastToBoard(boardID, EventNewMessage, resp)
	return resp, nil
}

// GetHistory returns the board's chat history oldest-first; member only
func (s *chatServiceImpl) GetHistory(ctx context.Context, userID, boardID uuid.UUID, limit, offset int) ([]*dto.ChatMessageResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 200 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := s.chatRepo.FindByBoardID(ctx, boardID, limit, offset)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch chat history", err.Error())
	}

	history := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, message := range messages {
		history = append(history, toChatMessageResponse(message))
	}
	return history, nil
}

// CanJoin checks whether the user may enter the board's room. Used by the
// websocket hub at join time; the handshake only proves identity.
func (s *chatServiceImpl) CanJoin(ctx context.Context, userID, boardID uuid.UUID) error {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return err
	}
	return requireMember(board, userID)
}

func toChatMessageResponse(message *domain.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		ID:        message.ID,
		BoardID:   message.BoardID,
		UserID:    message.UserID,
		Text:      message.Text,
		CreatedAt: message.CreatedAt,
	}
}
