package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/repository"
	"warroom-board-api/internal/response"
)

// ActivityService records and serves the append-only audit trail. Record is
// best-effort: a failed write never fails the mutation that produced it.
type ActivityService interface {
	ActivityRecorder
	GetBoardActivity(ctx context.Context, userID, boardID uuid.UUID, limit, offset int) ([]*dto.ActivityLogResponse, error)
}

type activityServiceImpl struct {
	boardRepo    repository.BoardRepository
	activityRepo repository.ActivityLogRepository
	logger       *zap.Logger
}

// NewActivityService creates a new instance of ActivityService
func NewActivityService(
	boardRepo repository.BoardRepository,
	activityRepo repository.ActivityLogRepository,
	logger *zap.Logger,
) ActivityService {
	return &activityServiceImpl{
		boardRepo:    boardRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Record appends an activity entry, logging instead of failing on error
func (s *activityServiceImpl) Record(ctx context.Context, boardID, userID uuid.UUID, action string, meta map[string]interface{}) {
	entry := &domain.ActivityLog{
		BoardID: boardID,
		UserID:  userID,
		Action:  action,
	}
	if meta != nil {
		raw, err := json.Marshal(meta)
		if err != nil {
			s.logger.Warn("Failed to encode activity meta",
				zap.String("action", action),
				zap.Error(err))
		} else {
			entry.Meta = raw
		}
	}

	if err := s.activityRepo.Create(ctx, entry); err != nil {
		s.logger.Warn("Failed to record activity",
			zap.String("board_id", boardID.String()),
			zap.String("action", action),
			zap.Error(err))
	}
}

// GetBoardActivity returns the board's audit trail newest-first; member only
func (s *activityServiceImpl) GetBoardActivity(ctx context.Context, userID, boardID uuid.UUID, limit, offset int) ([]*dto.ActivityLogResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.activityRepo.FindByBoardID(ctx, boardID, limit, offset)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch activity log", err.Error())
	}

	logs := make([]*dto.ActivityLogResponse, 0, len(entries))
	for _, entry := range entries {
		item := &dto.ActivityLogResponse{
			ID:        entry.ID,
			BoardID:   entry.BoardID,
			UserID:    entry.UserID,
			Action:    entry.Action,
			CreatedAt: entry.CreatedAt,
		}
		if len(entry.Meta) > 0 {
			if err := json.Unmarshal(entry.Meta, &item.Meta); err != nil {
				s.logger.Warn("Failed to decode activity meta",
					zap.String("activity_id", entry.ID.String()),
					zap.Error(err))
			}
		}
		logs = append(logs, item)
	}
	return logs, nil
}
