package service

import (
	"context"

	"github.com/google/uuid"
)

// Room event names, one per mutation action, plus the chat/session events.
// Every event carries the board id and the changed sub-entity so clients can
// reconcile their local state; the actor receives their own events too.
const (
	EventJoinedBoard = "joinedBoard"
	EventNewMessage  = "newMessage"

	EventBoardUpdated   = "board:updated"
	EventBoardCompleted = "board:completed"
	EventBoardDeleted   = "board:deleted"

	EventColumnCreated   = "column:created"
	EventColumnRenamed   = "column:renamed"
	EventColumnDeleted   = "column:deleted"
	EventColumnReordered = "column:reordered"

	EventTaskCreated   = "task:created"
	EventTaskUpdated   = "task:updated"
	EventTaskDeleted   = "task:deleted"
	EventTaskMoved     = "task:moved"
	EventTaskReordered = "task:reordered"
	EventTaskAssigned  = "task:assigned"

	EventCommentAdded   = "comment:added"
	EventCommentEdited  = "comment:edited"
	EventCommentDeleted = "comment:deleted"

	EventMemberAdded       = "member:added"
	EventMemberRemoved     = "member:removed"
	EventMemberRoleChanged = "member:role-changed"
)

// EventBroadcaster fans a room-scoped event out to every connection currently
// subscribed to the board. Delivery is fire-and-forget: implementations must
// never block the mutation path, and a failed or absent broadcaster degrades
// silently (clients catch up on their next read).
type EventBroadcaster interface {
	BroadcastToBoard(boardID uuid.UUID, event string, payload interface{})
}

// ActivityRecorder appends one audit record for a successful mutation.
// Best-effort: a recording failure is logged, never surfaced, and never rolls
// back the already-committed save.
type ActivityRecorder interface {
	Record(ctx context.Context, boardID, userID uuid.UUID, action string, meta map[string]interface{})
}
