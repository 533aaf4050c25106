package dto

import "github.com/google/uuid"

// CreateTaskRequest represents the request to add a task to a column
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

// EditTaskRequest represents the request to edit a task. Description is
// replaced only when explicitly provided.
type EditTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
}

// AssignTaskRequest represents the request to assign a task to a board member
type AssignTaskRequest struct {
	AssigneeID uuid.UUID `json:"assigneeId" binding:"required"`
}

// MoveTaskRequest represents moving a task from one column to another.
// The task lands at the end of the destination column.
type MoveTaskRequest struct {
	FromColumnID uuid.UUID `json:"fromColumnId" binding:"required"`
	ToColumnID   uuid.UUID `json:"toColumnId" binding:"required"`
	TaskID       uuid.UUID `json:"taskId" binding:"required"`
}

// ReorderTasksRequest represents a 0-based positional task move within one column
type ReorderTasksRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}
