package dto

// CreateColumnRequest represents the request to add a column to a board
type CreateColumnRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// RenameColumnRequest represents the request to rename a column
type RenameColumnRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// ReorderColumnsRequest represents a 0-based positional column move.
// Pointers distinguish a missing index from index 0.
type ReorderColumnsRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}
