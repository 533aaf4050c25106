package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/repository"
)

// MemberService defines the interface for board membership business logic.
// Adding, removing and role changes are owner operations; leaving is
// self-initiated and the owner may never leave.
type MemberService interface {
	AddMember(ctx context.Context, userID, boardID uuid.UUID, req *dto.AddMemberRequest) (*dto.MemberResponse, error)
	RemoveMember(ctx context.Context, userID, boardID, memberID uuid.UUID) error
	LeaveBoard(ctx context.Context, userID, boardID uuid.UUID) error
	ChangeMemberRole(ctx context.Context, userID, boardID, memberID uuid.UUID, req *dto.ChangeRoleRequest) (*dto.MemberResponse, error)
	GetBoardMembers(ctx context.Context, userID, boardID uuid.UUID) ([]dto.MemberResponse, error)
}

type memberServiceImpl struct {
	boardRepo   repository.BoardRepository
	recorder    ActivityRecorder
	broadcaster EventBroadcaster
	logger      *zap.Logger
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(
	boardRepo repository.BoardRepository,
	recorder ActivityRecorder,
	broadcaster EventBroadcaster,
	logger *zap.Logger,
) MemberService {
	return &memberServiceImpl{
		boardRepo:   boardRepo,
		recorder:    recorder,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// AddMember invites a user onto the board; owner only
func (s *memberServiceImpl) AddMember(ctx context.Context, userID, boardID uuid.UUID, req *dto.AddMemberRequest) (*dto.MemberResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(board, userID); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleMember
	}
	member, err := board.AddMember(req.UserID, role)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionMemberAdded, map[string]interface{}{
		"memberId": member.UserID,
		"role":     member.Role,
	})
	resp := &dto.MemberResponse{UserID: member.UserID, Role: member.Role}
	s.broadcaster.BroadcastToBoard(board.ID, EventMemberAdded, resp)

	return resp, nil
}

// RemoveMember kicks a member off the board; owner only
func (s *memberServiceImpl) RemoveMember(ctx context.Context, userID, boardID, memberID uuid.UUID) error {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return err
	}
	if err := requireOwner(board, userID); err != nil {
		return err
	}

	if err := board.RemoveMember(memberID); err != nil {
		return mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionMemberRemoved, map[string]interface{}{
		"memberId": memberID,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventMemberRemoved, map[string]interface{}{
		"memberId": memberID,
	})

	return nil
}

// LeaveBoard removes the caller's own membership. The owner may not leave.
func (s *memberServiceImpl) LeaveBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return err
	}
	if err := requireMember(board, userID); err != nil {
		return err
	}

	if err := board.RemoveMember(userID); err != nil {
		return mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionMemberRemoved, map[string]interface{}{
		"memberId": userID,
		"left":     true,
	})
	s.broadcaster.BroadcastToBoard(board.ID, EventMemberRemoved, map[string]interface{}{
		"memberId": userID,
	})

	return nil
}

// ChangeMemberRole promotes or demotes a member; owner only
func (s *memberServiceImpl) ChangeMemberRole(ctx context.Context, userID, boardID, memberID uuid.UUID, req *dto.ChangeRoleRequest) (*dto.MemberResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(board, userID); err != nil {
		return nil, err
	}

	member, err := board.ChangeMemberRole(memberID, req.Role)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := saveBoard(ctx, s.boardRepo, board); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, board.ID, userID, domain.ActionMemberRoleChanged, map[string]interface{}{
		"memberId": member.UserID,
		"role":     member.Role,
	})
	resp := &dto.MemberResponse{UserID: member.UserID, Role: member.Role}
	s.broadcaster.BroadcastToBoard(board.ID, EventMemberRoleChanged, resp)

	return resp, nil
}

// GetBoardMembers lists the owner plus every member with their role
func (s *memberServiceImpl) GetBoardMembers(ctx context.Context, userID, boardID uuid.UUID) ([]dto.MemberResponse, error) {
	board, err := loadBoard(ctx, s.boardRepo, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(board, userID); err != nil {
		return nil, err
	}
	return toMemberResponses(board), nil
}
