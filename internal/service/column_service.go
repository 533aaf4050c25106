package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/repository"
)

// ColumnService defines the interface for column business logic.
// All column mutations are admin-level operations.
type ColumnService interface {
	CreateColumn(ctx context.Context, userID, boardID uuid.UUID, req *dto.CreateColumnRequest) (*domain.Column, error)
	RenameColumn(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.RenameColumnRequest) (*domain.Column, error)
	DeleteColumn(ctx context.Context, userID, boardID, columnID uuid.UUID) error
	ReorderColumns(ctx context.Context, userID, boardID uuid.UUID, req *dto.ReorderColumnsRequest) (*dto.BoardResponse, error)
}

type columnServiceImpl struct {
	boardRepo   repository.BoardRepository
	recorder    ActivityRecorder
	broadcaster EventBroadcaster
	logger      *zap.Logger
}

// NewColumnService creates a new instance of ColumnService
func NewColumnService(
	boardRepo repository.BoardRepository,
	recorder ActivityRecorder,
	broadcaster EventBroadcaster,
	logger *zap.Logger,
) ColumnService {
	return &columnServiceImpl{
		boardRepo:   boardRepo,
		recorder:    recorder,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// CreateColumn appends a column at the end of the board
func (s *columnServiceImpl) CreateColumn(ctx context.Context, userID, boardID uuid.UUID, req *dto.CreateColumnRequest) (*domain.Column, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(board, userID); err != nil {
		return nil, err
	}

	column, err := board.InsertColumn(req.Title)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionColumnCreated, map[string]interface{}{
		"columnId": column.ID,
		"title":    column.Title,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventColumnCreated, column)

	return column, nil
}

// RenameColumn changes a column title
func (s *columnServiceImpl) RenameColumn(ctx context.Context, userID, boardID, columnID uuid.UUID, req *dto.RenameColumnRequest) (*domain.Column, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(board, userID); err != nil {
		return nil, err
	}

	column, err := board.RenameColumn(columnID, req.Title)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionColumnRenamed, map[string]interface{}{
		"columnId": column.ID,
		"title":    column.Title,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventColumnRenamed, column)

	return column, nil
}

// DeleteColumn removes a column and every task it contains
func (s *columnServiceImpl) DeleteColumn(ctx context.Context, userID, boardID, columnID uuid.UUID) error {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return err
	}
	if err := requireAdmin(board, userID); err != nil {
		return err
	}

	removed, err := board.RemoveColumn(columnID)
	if err != nil {
		return mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionColumnDeleted, map[string]interface{}{
		"columnId":  removed.ID,
		"title":     removed.Title,
		"taskCount": len(removed.Tasks),
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventColumnDeleted, map[string]interface{}{
		"columnId": removed.ID,
	})

	return nil
}

// ReorderColumns moves the column at position From to position To and
// broadcasts the whole board since every column's order may shift.
func (s *columnServiceImpl) ReorderColumns(ctx context.Context, userID, boardID uuid.UUID, req *dto.ReorderColumnsRequest) (*dto.BoardResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(board, userID); err != nil {
		return nil, err
	}

	if err := board.ReorderColumns(*req.From, *req.To); err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionColumnReordered, map[string]interface{}{
		"from": *req.From,
		"to":   *req.To,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventColumnReordered, toBoardResponse(board))

	return toBoardResponse(board), nil
}
