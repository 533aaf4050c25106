package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/metrics"
	"warroom-board-api/internal/repository"
	"warroom-board-api/internal/response"
)

// TaskService defines the interface for task business logic.
// Every member may mutate tasks; only the admin role gates structure.
type TaskService interface {
	CreateTask(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error)
	EditTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.EditTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID) error
	AssignTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.AssignTaskRequest) (*domain.Task, error)
	MoveTask(ctx context.Context, userID, boardID uuid.UUID, req *dto.MoveTaskRequest) (*domain.Task, error)
	ReorderTasks(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.ReorderTasksRequest) (*domain.Column, error)
}

type taskServiceImpl struct {
	boardRepo   repository.BoardRepository
	recorder    ActivityRecorder
	broadcaster EventBroadcaster
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	boardRepo repository.BoardRepository,
	recorder ActivityRecorder,
	broadcaster EventBroadcaster,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		boardRepo:   boardRepo,
		recorder:    recorder,
		broadcaster: broadcaster,
		metrics:     m,
		logger:      logger,
	}
}

// CreateTask appends a task to the given column
func (s *taskServiceImpl) CreateTask(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	task, err := board.InsertTask(columnID, req.Title, req.Description)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionTaskCreated, map[string]interface{}{
		"columnId": columnID,
		"taskId":   task.ID,
		"title":    task.Title,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventTaskCreated, map[string]interface{}{
		"columnId": columnID,
		"task":     task,
	})

	return task, nil
}

// EditTask updates title and, when provided, description
func (s *taskServiceImpl) EditTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.EditTaskRequest) (*domain.Task, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	task, err := board.EditTask(columnID, taskID, req.Title, req.Description)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionTaskUpdated, map[string]interface{}{
		"columnId": columnID,
		"taskId":   task.ID,
		"title":    task.Title,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventTaskUpdated, map[string]interface{}{
		"columnId": columnID,
		"task":     task,
	})

	return task, nil
}

// DeleteTask removes a task and its comment thread
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID) error {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return err
	}
	if err := requireMember(board, userID); err != nil {
		return err
	}

	removed, err := board.RemoveTask(columnID, taskID)
	if err != nil {
		return mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionTaskDeleted, map[string]interface{}{
		"columnId": columnID,
		"taskId":   removed.ID,
		"title":    removed.Title,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventTaskDeleted, map[string]interface{}{
		"columnId": columnID,
		"taskId":   removed.ID,
	})

	return nil
}

// AssignTask sets the assignee; the assignee must themselves be a board member
func (s *taskServiceImpl) AssignTask(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.AssignTaskRequest) (*domain.Task, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}
	if !domain.IsMember(board, req.AssigneeID) {
		return nil, response.NewAppError(response.ErrCodeValidation, "Assignee must be a board member", "")
	}

	task, err := board.AssignTask(columnID, taskID, req.AssigneeID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionTaskAssigned, map[string]interface{}{
		"columnId":   columnID,
		"taskId":     task.ID,
		"assigneeId": req.AssigneeID,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventTaskAssigned, map[string]interface{}{
		"columnId": columnID,
		"task":     task,
	})

	return task, nil
}

// MoveTask relocates a task across columns, appending at the destination end
func (s *taskServiceImpl) MoveTask(ctx context.Context, userID, boardID uuid.UUID, req *dto.MoveTaskRequest) (*domain.Task, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	task, err := board.MoveTask(req.FromColumnID, req.ToColumnID, req.TaskID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionTaskMoved, map[string]interface{}{
		"taskId":       task.ID,
		"fromColumnId": req.FromColumnID,
		"toColumnId":   req.ToColumnID,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventTaskMoved, map[string]interface{}{
		"fromColumnId": req.FromColumnID,
		"toColumnId":   req.ToColumnID,
		"task":         task,
	})

	return task, nil
}

// ReorderTasks repositions a task within one column and broadcasts the whole
// column since sibling positions shift.
func (s *taskServiceImpl) ReorderTasks(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.ReorderTasksRequest) (*domain.Column, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	if err := board.ReorderTasks(columnID, *req.From, *req.To); err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	var column *domain.Column
	for i := range board.Columns {
		if board.Columns[i].ID == columnID {
			column = &board.Columns[i]
			break
		}
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionTaskReordered, map[string]interface{}{
		"columnId": columnID,
		"from":     *req.From,
		"to":       *req.To,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventTaskReordered, column)

	return column, nil
}
