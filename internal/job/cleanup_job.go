package job

import (
	"context"

	"go.uber.org/zap"

	"warroom-board-api/internal/repository"
)

// CleanupJob purges activity log entries and chat messages whose board no
// longer exists. Permanent board deletion cascades best-effort at request
// time; this job sweeps whatever that pass missed.
type CleanupJob struct {
	activityRepo repository.ActivityLogRepository
	chatRepo     repository.ChatMessageRepository
	logger       *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	activityRepo repository.ActivityLogRepository,
	chatRepo repository.ChatMessageRepository,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		activityRepo: activityRepo,
		chatRepo:     chatRepo,
		logger:       logger,
	}
}

// Run executes the cleanup job. Implements cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting cleanup job for orphaned records")

	activityCount, err := j.activityRepo.DeleteOrphaned(ctx)
	if err != nil {
		j.logger.Error("Failed to delete orphaned activity logs",
			zap.Error(err),
		)
	}

	chatCount, err := j.chatRepo.DeleteOrphaned(ctx)
	if err != nil {
		j.logger.Error("Failed to delete orphaned chat messages",
			zap.Error(err),
		)
	}

	j.logger.Info("Cleanup job completed",
		zap.Int64("activity_logs_deleted", activityCount),
		zap.Int64("chat_messages_deleted", chatCount),
	)
}
