package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
)

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	CreateBoardFunc          func(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardFunc             func(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	GetMyBoardsFunc          func(ctx context.Context, userID uuid.UUID) ([]*dto.BoardSummaryResponse, error)
	UpdateBoardFunc          func(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	CompleteBoardFunc        func(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	SoftDeleteBoardFunc      func(ctx context.Context, userID, boardID uuid.UUID) error
	PermanentDeleteBoardFunc func(ctx context.Context, userID, boardID uuid.UUID) error
}

func (m *MockBoardService) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, userID, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) GetMyBoards(ctx context.Context, userID uuid.UUID) ([]*dto.BoardSummaryResponse, error) {
	if m.GetMyBoardsFunc != nil {
		return m.GetMyBoardsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, userID, boardID, req)
	}
	return nil, nil
}

func (m *MockBoardService) CompleteBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	if m.CompleteBoardFunc != nil {
		return m.CompleteBoardFunc(ctx, userID, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) SoftDeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.SoftDeleteBoardFunc != nil {
		return m.SoftDeleteBoardFunc(ctx, userID, boardID)
	}
	return nil
}

func (m *MockBoardService) PermanentDeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.PermanentDeleteBoardFunc != nil {
		return m.PermanentDeleteBoardFunc(ctx, userID, boardID)
	}
	return nil
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	CreateTaskFunc   func(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error)
	EditTaskFunc     func(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.EditTaskRequest) (*domain.Task, error)
	DeleteTaskFunc   func(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID) error
	AssignTaskFunc   func(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.AssignTaskRequest) (*domain.Task, error)
	MoveTaskFunc     func(ctx context.Context, userID, boardID uuid.UUID, req *dto.MoveTaskRequest) (*domain.Task, error)
	ReorderTasksFunc func(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.ReorderTasksRequest) (*domain.Column, error)
}

func (m *MockTaskService) CreateTask(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, userID, boardID, columnID, req)
	}
	return nil, nil
}

func (m *MockTaskService) EditTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.EditTaskRequest) (*domain.Task, error) {
	if m.EditTaskFunc != nil {
		return m.EditTaskFunc(ctx, userID, boardID, columnID, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, userID, boardID, columnID, taskID)
	}
	return nil
}

func (m *MockTaskService) AssignTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.AssignTaskRequest) (*domain.Task, error) {
	if m.AssignTaskFunc != nil {
		return m.AssignTaskFunc(ctx, userID, boardID, columnID, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) MoveTask(ctx context.Context, userID, boardID uuid.UUID, req *dto.MoveTaskRequest) (*domain.Task, error) {
	if m.MoveTaskFunc != nil {
		return m.MoveTaskFunc(ctx, userID, boardID, req)
	}
	return nil, nil
}

func (m *MockTaskService) ReorderTasks(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.ReorderTasksRequest) (*domain.Column, error) {
	if m.ReorderTasksFunc != nil {
		return m.ReorderTasksFunc(ctx, userID, boardID, columnID, req)
	}
	return nil, nil
}

// injectAuth seeds the context values the auth middleware would set
func injectAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("jwtToken", "test-token")
		c.Next()
	}
}
