package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"warroom-board-api/internal/domain"
)

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc      func(ctx context.Context, board *domain.Board) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindForUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	SaveFunc        func(ctx context.Context, board *domain.Board) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	if m.FindForUserFunc != nil {
		return m.FindForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Save(ctx context.Context, board *domain.Board) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockActivityLogRepository is a mock implementation of ActivityLogRepository
type MockActivityLogRepository struct {
	CreateFunc          func(ctx context.Context, entry *domain.ActivityLog) error
	FindByBoardIDFunc   func(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ActivityLog, error)
	DeleteByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) error
	DeleteOrphanedFunc  func(ctx context.Context) (int64, error)
}

func (m *MockActivityLogRepository) Create(ctx context.Context, entry *domain.ActivityLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *MockActivityLogRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ActivityLog, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID, limit, offset)
	}
	return nil, nil
}

func (m *MockActivityLogRepository) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	if m.DeleteByBoardIDFunc != nil {
		return m.DeleteByBoardIDFunc(ctx, boardID)
	}
	return nil
}

func (m *MockActivityLogRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	if m.DeleteOrphanedFunc != nil {
		return m.DeleteOrphanedFunc(ctx)
	}
	return 0, nil
}

// MockChatMessageRepository is a mock implementation of ChatMessageRepository
type MockChatMessageRepository struct {
	CreateFunc          func(ctx context.Context, message *domain.ChatMessage) error
	FindByBoardIDFunc   func(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error)
	DeleteByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) error
	DeleteOrphanedFunc  func(ctx context.Context) (int64, error)
}

func (m *MockChatMessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *MockChatMessageRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID, limit, offset)
	}
	return nil, nil
}

func (m *MockChatMessageRepository) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	if m.DeleteByBoardIDFunc != nil {
		return m.DeleteByBoardIDFunc(ctx, boardID)
	}
	return nil
}

func (m *MockChatMessageRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	if m.DeleteOrphanedFunc != nil {
		return m.DeleteOrphanedFunc(ctx)
	}
	return 0, nil
}

type recordedActivity struct {
	BoardID uuid.UUID
	UserID  uuid.UUID
	Action  string
	Meta    map[string]interface{}
}

// MockRecorder captures activity records for assertion
type MockRecorder struct {
	mu      sync.Mutex
	Records []recordedActivity
}

func (m *MockRecorder) Record(ctx context.Context, boardID, userID uuid.UUID, action string, meta map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, recordedActivity{BoardID: boardID, UserID: userID, Action: action, Meta: meta})
}

func (m *MockRecorder) LastAction() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Records) == 0 {
		return ""
	}
	return m.Records[len(m.Records)-1].Action
}

type broadcastEvent struct {
	BoardID uuid.UUID
	Event   string
	Payload interface{}
}

// MockBroadcaster captures room broadcasts for assertion
type MockBroadcaster struct {
	mu     sync.Mutex
	Events []broadcastEvent
}

func (m *MockBroadcaster) BroadcastToBoard(boardID uuid.UUID, event string, payload interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, broadcastEvent{BoardID: boardID, Event: event, Payload: payload})
}

func (m *MockBroadcaster) LastEvent() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Events) == 0 {
		return ""
	}
	return m.Events[len(m.Events)-1].Event
}
