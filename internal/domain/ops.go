package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Structural mutation errors, mapped to the response taxonomy in the service
// layer. Every check runs before any mutation so a failed operation leaves
// the aggregate untouched.
var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrEmptyText        = errors.New("text must not be empty")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNotCommentAuthor = errors.New("only the comment author may modify it")
	ErrAlreadyMember    = errors.New("user is already a board member")
	ErrInvalidRole      = errors.New("invalid member role")
	ErrOwnerImmutable   = errors.New("board owner cannot be removed, demoted or made to leave")
)

func (b *Board) findColumn(columnID uuid.UUID) *Column {
	for i := range b.Columns {
		if b.Columns[i].ID == columnID {
			return &b.Columns[i]
		}
	}
	return nil
}

func (c *Column) findTask(taskID uuid.UUID) *Task {
	for i := range c.Tasks {
		if c.Tasks[i].ID == taskID {
			return &c.Tasks[i]
		}
	}
	return nil
}

func (t *Task) findComment(commentID uuid.UUID) *Comment {
	for i := range t.Comments {
		if t.Comments[i].ID == commentID {
			return &t.Comments[i]
		}
	}
	return nil
}

// InsertColumn appends a new column; its order is its 1-based list position
func (b *Board) InsertColumn(title string) (*Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	b.Columns = append(b.Columns, Column{
		ID:    uuid.New(),
		Title: title,
		Order: len(b.Columns) + 1,
		Tasks: []Task{},
	})
	return &b.Columns[len(b.Columns)-1], nil
}

// RemoveColumn deletes the column and every task it owns. Remaining orders
// are not recomputed; only an explicit reorder densifies them.
func (b *Board) RemoveColumn(columnID uuid.UUID) (*Column, error) {
	for i := range b.Columns {
		if b.Columns[i].ID == columnID {
			removed := b.Columns[i]
			b.Columns = append(b.Columns[:i], b.Columns[i+1:]...)
			return &removed, nil
		}
	}
	return nil, ErrColumnNotFound
}

// RenameColumn replaces the column title
func (b *Board) RenameColumn(columnID uuid.UUID, title string) (*Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	col.Title = title
	return col, nil
}

// ReorderColumns moves the column at the 0-based index from to index to and
// reassigns every column's order to its new 1-based position.
func (b *Board) ReorderColumns(from, to int) error {
	if from < 0 || from >= len(b.Columns) || to < 0 || to >= len(b.Columns) {
		return ErrIndexOutOfRange
	}
	col := b.Columns[from]
	b.Columns = append(b.Columns[:from], b.Columns[from+1:]...)
	b.Columns = append(b.Columns[:to], append([]Column{col}, b.Columns[to:]...)...)
	for i := range b.Columns {
		b.Columns[i].Order = i + 1
	}
	return nil
}

// InsertTask appends a task to the column's task list
func (b *Board) InsertTask(columnID uuid.UUID, title, description string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	col.Tasks = append(col.Tasks, Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Comments:    []Comment{},
	})
	return &col.Tasks[len(col.Tasks)-1], nil
}

// RemoveTask deletes a task (and its comments) from the column
func (b *Board) RemoveTask(columnID, taskID uuid.UUID) (*Task, error) {
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	for i := range col.Tasks {
		if col.Tasks[i].ID == taskID {
			removed := col.Tasks[i]
			col.Tasks = append(col.Tasks[:i], col.Tasks[i+1:]...)
			return &removed, nil
		}
	}
	return nil, ErrTaskNotFound
}

// EditTask replaces the task title and, only when description is non-nil,
// the description.
func (b *Board) EditTask(columnID, taskID uuid.UUID, title string, description *string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	task := col.findTask(taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}
	task.Title = title
	if description != nil {
		task.Description = *description
	}
	return task, nil
}

// AssignTask sets the task assignee. Membership of the assignee is validated
// one level up, against the loaded board snapshot.
func (b *Board) AssignTask(columnID, taskID, assigneeID uuid.UUID) (*Task, error) {
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	task := col.findTask(taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}
	task.AssignedTo = &assigneeID
	return task, nil
}

// MoveTask removes a task from the source column, matched by id so a
// concurrent reorder cannot redirect the move, and appends it to the
// destination column. Both columns are resolved before anything mutates.
func (b *Board) MoveTask(sourceColumnID, destColumnID, taskID uuid.UUID) (*Task, error) {
	src := b.findColumn(sourceColumnID)
	if src == nil {
		return nil, ErrColumnNotFound
	}
	dst := b.findColumn(destColumnID)
	if dst == nil {
		return nil, ErrColumnNotFound
	}
	idx := -1
	for i := range src.Tasks {
		if src.Tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrTaskNotFound
	}
	task := src.Tasks[idx]
	src.Tasks = append(src.Tasks[:idx], src.Tasks[idx+1:]...)
	dst.Tasks = append(dst.Tasks, task)
	return &dst.Tasks[len(dst.Tasks)-1], nil
}

// ReorderTasks moves the task at 0-based index from to index to within one
// column's task list.
func (b *Board) ReorderTasks(columnID uuid.UUID, from, to int) error {
	col := b.findColumn(columnID)
	if col == nil {
		return ErrColumnNotFound
	}
	if from < 0 || from >= len(col.Tasks) || to < 0 || to >= len(col.Tasks) {
		return ErrIndexOutOfRange
	}
	task := col.Tasks[from]
	col.Tasks = append(col.Tasks[:from], col.Tasks[from+1:]...)
	col.Tasks = append(col.Tasks[:to], append([]Task{task}, col.Tasks[to:]...)...)
	return nil
}

// InsertComment appends a comment authored by authorID to the task
func (b *Board) InsertComment(columnID, taskID, authorID uuid.UUID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	task := col.findTask(taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}
	task.Comments = append(task.Comments, Comment{
		ID:        uuid.New(),
		Text:      text,
		UserID:    authorID,
		CreatedAt: time.Now().UTC(),
	})
	return &task.Comments[len(task.Comments)-1], nil
}

// EditComment replaces the comment text; only the author may edit
func (b *Board) EditComment(columnID, taskID, commentID, editorID uuid.UUID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	task := col.findTask(taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}
	comment := task.findComment(commentID)
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if !IsCommentAuthor(comment, editorID) {
		return nil, ErrNotCommentAuthor
	}
	comment.Text = text
	return comment, nil
}

// RemoveComment deletes the comment; only the author may delete
func (b *Board) RemoveComment(columnID, taskID, commentID, editorID uuid.UUID) (*Comment, error) {
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	task := col.findTask(taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}
	for i := range task.Comments {
		if task.Comments[i].ID == commentID {
			if !IsCommentAuthor(&task.Comments[i], editorID) {
				return nil, ErrNotCommentAuthor
			}
			removed := task.Comments[i]
			task.Comments = append(task.Comments[:i], task.Comments[i+1:]...)
			return &removed, nil
		}
	}
	return nil, ErrCommentNotFound
}

// AddMember adds userID to the member list. The owner never gets a member
// entry and user ids are unique within the list.
func (b *Board) AddMember(userID uuid.UUID, role Role) (*Member, error) {
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if userID == b.CreatedBy {
		return nil, ErrAlreadyMember
	}
	if b.FindMember(userID) != nil {
		return nil, ErrAlreadyMember
	}
	b.Members = append(b.Members, Member{UserID: userID, Role: role})
	return &b.Members[len(b.Members)-1], nil
}

// RemoveMember removes userID from the member list
func (b *Board) RemoveMember(userID uuid.UUID) error {
	if userID == b.CreatedBy {
		return ErrOwnerImmutable
	}
	for i := range b.Members {
		if b.Members[i].UserID == userID {
			b.Members = append(b.Members[:i], b.Members[i+1:]...)
			return nil
		}
	}
	return ErrMemberNotFound
}

// ChangeMemberRole updates the role of an existing member
func (b *Board) ChangeMemberRole(userID uuid.UUID, role Role) (*Member, error) {
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if userID == b.CreatedBy {
		return nil, ErrOwnerImmutable
	}
	m := b.FindMember(userID)
	if m == nil {
		return nil, ErrMemberNotFound
	}
	m.Role = role
	return m, nil
}

// SoftDeleteFor hides the board from userID's view without destroying it.
// Idempotent.
func (b *Board) SoftDeleteFor(userID uuid.UUID) {
	for _, id := range b.DeletedFor {
		if id == userID {
			return
		}
	}
	b.DeletedFor = append(b.DeletedFor, userID)
}
