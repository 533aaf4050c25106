package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/repository"
)

// CommentService defines the interface for task comment business logic.
// Any member may comment; edits and deletes are author-only.
type CommentService interface {
	AddComment(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*domain.Comment, error)
	EditComment(ctx context.Context, userID, boardID, columnID, taskID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*domain.Comment, error)
	DeleteComment(ctx context.Context, userID, boardID, columnID, taskID, commentID uuid.UUID) error
}

type commentServiceImpl struct {
	boardRepo   repository.BoardRepository
	recorder    ActivityRecorder
	broadcaster EventBroadcaster
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	boardRepo repository.BoardRepository,
	recorder ActivityRecorder,
	broadcaster EventBroadcaster,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		boardRepo:   boardRepo,
		recorder:    recorder,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// AddComment appends a comment to the task's thread
func (s *commentServiceImpl) AddComment(ctx context.Context, userID, boardID, columnID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*domain.Comment, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	comment, err := board.InsertComment(columnID, taskID, userID, req.Text)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionCommentAdded, map[string]interface{}{
		"columnId":  columnID,
		"taskId":    taskID,
		"commentId": comment.ID,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventCommentAdded, map[string]interface{}{
		"columnId": columnID,
		"taskId":   taskID,
		"comment":  comment,
	})

	return comment, nil
}

// EditComment replaces the comment text; rejects non-authors
func (s *commentServiceImpl) EditComment(ctx context.Context, userID, boardID, columnID, taskID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*domain.Comment, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	comment, err := board.EditComment(columnID, taskID, commentID, userID, req.Text)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionCommentEdited, map[string]interface{}{
		"columnId":  columnID,
		"taskId":    taskID,
		"commentId": comment.ID,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventCommentEdited, map[string]interface{}{
		"columnId": columnID,
		"taskId":   taskID,
		"comment":  comment,
	})

	return comment, nil
}

// DeleteComment removes the comment; rejects non-authors
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, boardID, columnID, taskID, commentID uuid.UUID) error {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return err
	}
	if err := requireMember(board, userID); err != nil {
		return err
	}

	removed, err := board.RemoveComment(columnID, taskID, commentID, userID)
	if err != nil {
		return mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionCommentDeleted, map[string]interface{}{
		"columnId":  columnID,
		"taskId":    taskID,
		"commentId": removed.ID,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventCommentDeleted, map[string]interface{}{
		"columnId":  columnID,
		"taskId":    taskID,
		"commentId": removed.ID,
	})

	return nil
}
