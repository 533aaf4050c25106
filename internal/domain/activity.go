package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Action tags for the activity log
const (
	ActionTaskCreated   = "TASK_CREATED"
	ActionTaskUpdated   = "TASK_UPDATED"
	ActionTaskDeleted   = "TASK_DELETED"
	ActionTaskMoved     = "TASK_MOVED"
	ActionTaskReordered = "TASK_REORDERED"
	ActionTaskAssigned  = "TASK_ASSIGNED"

	ActionCommentAdded   = "COMMENT_ADDED"
	ActionCommentEdited  = "COMMENT_EDITED"
	ActionCommentDeleted = "COMMENT_DELETED"

	ActionColumnCreated   = "COLUMN_CREATED"
	ActionColumnRenamed   = "COLUMN_RENAMED"
	ActionColumnDeleted   = "COLUMN_DELETED"
	ActionColumnReordered = "COLUMN_REORDERED"

	ActionMemberAdded       = "MEMBER_ADDED"
	ActionMemberRemoved     = "MEMBER_REMOVED"
	ActionMemberRoleChanged = "MEMBER_ROLE_CHANGED"

	ActionBoardCreated   = "BOARD_CREATED"
	ActionBoardUpdated   = "BOARD_UPDATED"
	ActionBoardCompleted = "BOARD_COMPLETED"
)

// ActivityLog is one immutable audit record for a successful board mutation.
// Rows are only ever appended by the service and purged by the cleanup job
// after their board is permanently deleted.
type ActivityLog struct {
	BaseModel
	BoardID uuid.UUID      `gorm:"type:uuid;not null;index:idx_activity_logs_board_id" json:"board_id"`
	UserID  uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	Action  string         `gorm:"type:varchar(50);not null" json:"action"`
	Meta    datatypes.JSON `gorm:"type:jsonb" json:"meta"`
}

// TableName specifies the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}
