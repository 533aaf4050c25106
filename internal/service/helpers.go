package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/repository"
	"warroom-board-api/internal/response"
)

// loadBoard fetches the aggregate, mapping a missing row to NOT_FOUND
func loadBoard(ctx context.Context, repo repository.BoardRepository, boardID uuid.UUID) (*domain.Board, error) {
	board, err := repo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	return board, nil
}

// saveBoard persists the mutated aggregate, mapping a lost version race to
// CONFLICT so the caller can reload and retry.
func saveBoard(ctx context.Context, repo repository.BoardRepository, board *domain.Board) error {
	if err := repo.Save(ctx, board); err != nil {
		if errors.Is(err, repository.ErrStaleBoard) {
			return response.NewAppError(response.ErrCodeConflict, "Board was modified concurrently, reload and retry", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to save board", err.Error())
	}
	return nil
}

// Permission guards. Predicates are evaluated after load so soft-delete and
// role state are current.

func requireMember(board *domain.Board, userID uuid.UUID) error {
	if !domain.IsMember(board, userID) {
		return response.NewAppError(response.ErrCodeForbidden, "You are not a member of this board", "")
	}
	return nil
}

func requireAdmin(board *domain.Board, userID uuid.UUID) error {
	if !domain.IsAdmin(board, userID) {
		return response.NewAppError(response.ErrCodeForbidden, "Admin access required", "")
	}
	return nil
}

func requireOwner(board *domain.Board, userID uuid.UUID) error {
	if !domain.IsOwner(board, userID) {
		return response.NewAppError(response.ErrCodeForbidden, "Only the board owner may do this", "")
	}
	return nil
}

// mapDomainError translates aggregate sentinel errors into the response
// taxonomy. Checks run before mutation, so any of these means the aggregate
// is untouched.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrColumnNotFound):
		return response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
	case errors.Is(err, domain.ErrTaskNotFound):
		return response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
	case errors.Is(err, domain.ErrCommentNotFound):
		return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
	case errors.Is(err, domain.ErrMemberNotFound):
		return response.NewAppError(response.ErrCodeNotFound, "Member not found", "")
	case errors.Is(err, domain.ErrNotCommentAuthor):
		return response.NewAppError(response.ErrCodeForbidden, "Only the comment author may modify it", "")
	case errors.Is(err, domain.ErrAlreadyMember):
		return response.NewAppError(response.ErrCodeAlreadyExists, "User is already a board member", "")
	case errors.Is(err, domain.ErrEmptyTitle):
		return response.NewAppError(response.ErrCodeValidation, "Title must not be empty", "")
	case errors.Is(err, domain.ErrEmptyText):
		return response.NewAppError(response.ErrCodeValidation, "Text must not be empty", "")
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return response.NewAppError(response.ErrCodeValidation, "Index out of range", "")
	case errors.Is(err, domain.ErrInvalidRole):
		return response.NewAppError(response.ErrCodeValidation, "Role must be admin or member", "")
	case errors.Is(err, domain.ErrOwnerImmutable):
		return response.NewAppError(response.ErrCodeValidation, "The board owner cannot be removed, demoted or made to leave", "")
	default:
		return response.NewAppError(response.ErrCodeInternal, "Board mutation failed", err.Error())
	}
}

// toMemberResponses lists the owner first, then the member entries
func toMemberResponses(board *domain.Board) []dto.MemberResponse {
	members := make([]dto.MemberResponse, 0, len(board.Members)+1)
	members = append(members, dto.MemberResponse{
		UserID: board.CreatedBy,
		Role:   domain.RoleAdmin,
		Owner:  true,
	})
	for _, m := range board.Members {
		members = append(members, dto.MemberResponse{UserID: m.UserID, Role: m.Role})
	}
	return members
}

// toBoardResponse converts the aggregate to its response DTO
func toBoardResponse(board *domain.Board) *dto.BoardResponse {
	return &dto.BoardResponse{
		ID:        board.ID,
		Title:     board.Title,
		CreatedBy: board.CreatedBy,
		Status:    board.Status,
		Version:   board.Version,
		Members:   toMemberResponses(board),
		Columns:   board.Columns,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
}

// toBoardSummary converts the aggregate to its list-view DTO
func toBoardSummary(board *domain.Board) *dto.BoardSummaryResponse {
	return &dto.BoardSummaryResponse{
		ID:        board.ID,
		Title:     board.Title,
		CreatedBy: board.CreatedBy,
		Status:    board.Status,
		Members:   len(board.Members) + 1,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
}
