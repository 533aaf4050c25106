package dto

// CreateCommentRequest represents the request to add a comment to a task
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// UpdateCommentRequest represents the request to edit a comment (author only)
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}
