package dto

import (
	"time"

	"github.com/google/uuid"

	"warroom-board-api/internal/domain"
)

// CreateBoardRequest represents the request to create a new board
type CreateBoardRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// UpdateBoardRequest represents the request to edit board details
type UpdateBoardRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// BoardResponse represents the full board aggregate
type BoardResponse struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	CreatedBy uuid.UUID          `json:"createdBy"`
	Status    domain.BoardStatus `json:"status"`
	Version   int64              `json:"version"`
	Members   []MemberResponse   `json:"members"`
	Columns   []domain.Column    `json:"columns"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// BoardSummaryResponse represents a board in list views, without columns
type BoardSummaryResponse struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	CreatedBy uuid.UUID          `json:"createdBy"`
	Status    domain.BoardStatus `json:"status"`
	Members   int                `json:"memberCount"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
