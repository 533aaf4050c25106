package dto

import (
	"github.com/google/uuid"

	"warroom-board-api/internal/domain"
)

// AddMemberRequest represents the request to add a member to a board.
// Role defaults to "member" when omitted.
type AddMemberRequest struct {
	UserID uuid.UUID   `json:"userId" binding:"required"`
	Role   domain.Role `json:"role"`
}

// ChangeRoleRequest represents the request to change a member's role
type ChangeRoleRequest struct {
	Role domain.Role `json:"role" binding:"required"`
}

// MemberResponse represents one entry of a board's member list
type MemberResponse struct {
	UserID uuid.UUID   `json:"userId"`
	Role   domain.Role `json:"role"`
	Owner  bool        `json:"owner"`
}
