package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warroom-board-api/internal/domain"
)

// ActivityLogRepository defines append-only access to the audit trail
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *domain.ActivityLog) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ActivityLog, error)
	DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error
	DeleteOrphaned(ctx context.Context) (int64, error)
}

// activityLogRepositoryImpl is the GORM implementation of ActivityLogRepository
type activityLogRepositoryImpl struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new instance of ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepositoryImpl{db: db}
}

// Create appends one audit record
func (r *activityLogRepositoryImpl) Create(ctx context.Context, entry *domain.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByBoardID lists a board's audit trail newest-first
func (r *activityLogRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]*domain.ActivityLog, error) {
	var entries []*domain.ActivityLog
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByBoardID removes all audit records for a destroyed board
func (r *activityLogRepositoryImpl) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ActivityLog{}, "board_id = ?", boardID).Error
}

// DeleteOrphaned removes audit records whose board no longer exists.
// Safety net for the cleanup job; the delete path already purges directly.
func (r *activityLogRepositoryImpl) DeleteOrphaned(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM activity_logs WHERE board_id NOT IN (SELECT id FROM boards)")
	return res.RowsAffected, res.Error
}
