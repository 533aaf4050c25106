package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel holds common fields for persisted entities
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null" json:"updated_at"`
}

// BoardStatus represents the lifecycle state of a board
type BoardStatus string

const (
	BoardStatusActive    BoardStatus = "active"
	BoardStatusCompleted BoardStatus = "completed"
)

// Role represents a board member's role
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ValidRole reports whether r is an accepted member role
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleMember
}

// Member is one entry of a board's member list. The board owner is never
// present here; ownership is carried by Board.CreatedBy.
type Member struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}

// Comment belongs to exactly one task and is editable only by its author
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Task belongs to exactly one column at any instant; MoveTask transfers
// ownership atomically within the aggregate
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	Comments    []Comment  `json:"comments"`
}

// Column is an ordered list of tasks. Order is 1-based display order and is
// re-densified only by ReorderColumns.
type Column struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Order int       `json:"order"`
	Tasks []Task    `json:"tasks"`
}

// Board is the root aggregate: one row per board, with members, the
// per-viewer soft-delete set and the full column/task/comment document stored
// as JSONB. Loading a board loads the whole aggregate and Save writes it back
// as a unit, so concurrent saves resolve last-writer-wins unless the version
// check rejects the stale writer.
type Board struct {
	BaseModel
	Title      string      `gorm:"type:varchar(255);not null" json:"title"`
	CreatedBy  uuid.UUID   `gorm:"type:uuid;not null;index:idx_boards_created_by" json:"created_by"`
	Status     BoardStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Version    int64       `gorm:"not null;default:0" json:"version"`
	Members    []Member    `gorm:"type:jsonb;serializer:json" json:"members"`
	DeletedFor []uuid.UUID `gorm:"type:jsonb;serializer:json" json:"-"`
	Columns    []Column    `gorm:"type:jsonb;serializer:json" json:"columns"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// NewBoard creates a board owned by createdBy, seeded with the three default
// columns at orders 1..3 and an empty member list.
func NewBoard(title string, createdBy uuid.UUID) *Board {
	return &Board{
		Title:     title,
		CreatedBy: createdBy,
		Status:    BoardStatusActive,
		Members:   []Member{},
		Columns: []Column{
			{ID: uuid.New(), Title: "To Do", Order: 1, Tasks: []Task{}},
			{ID: uuid.New(), Title: "In Progress", Order: 2, Tasks: []Task{}},
			{ID: uuid.New(), Title: "Done", Order: 3, Tasks: []Task{}},
		},
	}
}

// FindMember returns the member entry for userID, or nil. The owner has no
// member entry.
func (b *Board) FindMember(userID uuid.UUID) *Member {
	for i := range b.Members {
		if b.Members[i].UserID == userID {
			return &b.Members[i]
		}
	}
	return nil
}

// TaskCount returns the total number of tasks across all columns
func (b *Board) TaskCount() int {
	n := 0
	for i := range b.Columns {
		n += len(b.Columns[i].Tasks)
	}
	return n
}
