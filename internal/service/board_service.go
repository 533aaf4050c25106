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

// BoardService defines the interface for board-level business logic
type BoardService interface {
	CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	GetMyBoards(ctx context.Context, userID uuid.UUID) ([]*dto.BoardSummaryResponse, error)
	UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	CompleteBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	SoftDeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error
	PermanentDeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo    repository.BoardRepository
	activityRepo repository.ActivityLogRepository
	chatRepo     repository.ChatMessageRepository
	recorder     ActivityRecorder
	broadcaster  EventBroadcaster
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	activityRepo repository.ActivityLogRepository,
	chatRepo repository.ChatMessageRepository,
	recorder ActivityRecorder,
	broadcaster EventBroadcaster,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:    boardRepo,
		activityRepo: activityRepo,
		chatRepo:     chatRepo,
		recorder:     recorder,
		broadcaster:  broadcaster,
		metrics:      m,
		logger:       logger,
	}
}

// CreateBoard creates a board owned by the caller, seeded with the three
// default columns. Any authenticated user may create boards.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	board := domain.NewBoard(req.Title, userID)

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionBoardCreated, map[string]interface{}{
		"title": board.Title,
	})

	return toBoardResponse(board), nil
}

// GetBoard loads the full aggregate; caller must be a member
func (s *boardServiceImpl) GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}
	return toBoardResponse(board), nil
}

// GetMyBoards lists boards the caller owns or belongs to, excluding boards
// they soft-deleted for themselves.
func (s *boardServiceImpl) GetMyBoards(ctx context.Context, userID uuid.UUID) ([]*dto.BoardSummaryResponse, error) {
	boards, err := s.boardRepo.FindForUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}

	summaries := make([]*dto.BoardSummaryResponse, 0, len(boards))
	for _, board := range boards {
		if !domain.IsMember(board, userID) {
			continue
		}
		summaries = append(summaries, toBoardSummary(board))
	}
	return summaries, nil
}

// UpdateBoard edits the board title; admin only
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(board, userID); err != nil {
		return nil, err
	}

	previous := board.Title
	board.Title = req.Title
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionBoardUpdated, map[string]interface{}{
		"from": previous,
		"to":   board.Title,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventBoardUpdated, toBoardResponse(board))

	return toBoardResponse(board), nil
}

// CompleteBoard marks the board completed; admin only
func (s *boardServiceImpl) CompleteBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(board, userID); err != nil {
		return nil, err
	}

	board.Status = domain.BoardStatusCompleted
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionBoardCompleted, map[string]interface{}{
		"title": board.Title,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventBoardCompleted, toBoardResponse(board))

	return toBoardResponse(board), nil
}

// SoftDeleteBoard hides the board from the caller's view only. The board,
// and every other member's access, is untouched.
func (s *boardServiceImpl) SoftDeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return err
	}
	if err := requireMember(board, userID); err != nil {
		return err
	}

	board.SoftDeleteFor(userID)
	return saveBoard(ctx, s.boardRepo, board)
}

// PermanentDeleteBoard destroys the board and purges its activity trail and
// chat history. Owner only; a soft-deleted owner may still destroy their own
// board since ownership never expires.
func (s *boardServiceImpl) PermanentDeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return err
	}
	if err := requireOwner(board, userID); err != nil {
		return err
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	// Cascade is best-effort; the cleanup job sweeps any leftovers.
	if err := s.activityRepo.DeleteByBoardID(ctx, boardID); err != nil {
		s.logger.Warn("Failed to purge activity logs for deleted board",
			zap.String("board_id", boardID.String()),
			zap.Error(err))
	}
	if err := s.chatRepo.DeleteByBoardID(ctx, boardID); err != nil {
		s.logger.Warn("Failed to purge chat messages for deleted board",
			zap.String("board_id", boardID.String()),
			zap.Error(err))
	}

	s.broadcaster.BroadcastToBoard(boardID, EventBoardDeleted, map[string]interface{}{
		"boardId": boardID,
	})

	return nil
}
