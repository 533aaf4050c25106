package job

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/domain"
)

type mockActivityRepo struct {
	deleteOrphanedCalled bool
	deleteOrphanedCount  int64
	deleteOrphanedErr    error
}

func (m *mockActivityRepo) Create(ctx context.Context, entry *domain.ActivityLog) error {
	return nil
}

func (m *mockActivityRepo) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ActivityLog, error) {
	return nil, nil
}

func (m *mockActivityRepo) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	return nil
}

func (m *mockActivityRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	m.deleteOrphanedCalled = true
	return m.deleteOrphanedCount, m.deleteOrphanedErr
}

type mockChatRepo struct {
	deleteOrphanedCalled bool
	deleteOrphanedCount  int64
	deleteOrphanedErr    error
}

func (m *mockChatRepo) Create(ctx context.Context, message *domain.ChatMessage) error {
	return nil
}

func (m *mockChatRepo) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error) {
	return nil, nil
}

func (m *mockChatRepo) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	return nil
}

func (m *mockChatRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	m.deleteOrphanedCalled = true
	return m.deleteOrphanedCount, m.deleteOrphanedErr
}

func TestCleanupJob_Run(t *testing.T) {
	activityRepo := &mockActivityRepo{deleteOrphanedCount: 3}
	chatRepo := &mockChatRepo{deleteOrphanedCount: 7}

	job := NewCleanupJob(activityRepo, chatRepo, zap.NewNop())
	job.Run()

	if !activityRepo.deleteOrphanedCalled {
		t.Error("expected orphaned activity logs to be purged")
	}
	if !chatRepo.deleteOrphanedCalled {
		t.Error("expected orphaned chat messages to be purged")
	}
}

func TestCleanupJob_Run_ContinuesPastActivityError(t *testing.T) {
	activityRepo := &mockActivityRepo{deleteOrphanedErr: errors.New("db unavailable")}
	chatRepo := &mockChatRepo{}

	job := NewCleanupJob(activityRepo, chatRepo, zap.NewNop())
	job.Run()

	// A failed activity purge must not stop the chat purge
	if !chatRepo.deleteOrphanedCalled {
		t.Error("expected chat purge to run despite activity purge failure")
	}
}
