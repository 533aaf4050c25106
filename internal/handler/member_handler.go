package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/response"
	"warroom-board-api/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func parseMemberID(c *gin.Context) (uuid.UUID, bool) {
	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return uuid.Nil, false
	}
	return memberID, true
}

// GetBoardMembers godoc
// @Summary      Board 멤버 목록 조회
// @Description  소유자를 포함한 보드 멤버와 역할을 조회합니다
// @Tags         members
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MemberResponse}
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId}/members [get]
func (h *MemberHandler) GetBoardMembers(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	members, err := h.memberService.GetBoardMembers(c.Request.Context(), auth.UserID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}

// AddMember godoc
// @Summary      Board 멤버 추가
// @Description  보드에 멤버를 추가합니다 (소유자 전용)
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.AddMemberRequest true "멤버 추가 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.MemberResponse}
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      409 {object} response.ErrorResponse "이미 멤버임"
// @Router       /{boardId}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	member, err := h.memberService.AddMember(c.Request.Context(), auth.UserID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, member)
}

// RemoveMember godoc
// @Summary      Board 멤버 제거
// @Description  보드에서 멤버를 제거합니다 (소유자 전용, 소유자는 제거 불가)
// @Tags         members
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "소유자는 제거할 수 없음"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "멤버를 찾을 수 없음"
// @Router       /{boardId}/members/{userId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	memberID, ok := parseMemberID(c)
	if !ok {
		return
	}

	if err := h.memberService.RemoveMember(c.Request.Context(), auth.UserID, boardID, memberID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// LeaveBoard godoc
// @Summary      Board 나가기
// @Description  보드에서 스스로 나갑니다 (소유자는 나갈 수 없음)
// @Tags         members
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "소유자는 나갈 수 없음"
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Router       /{boardId}/members/leave [post]
func (h *MemberHandler) LeaveBoard(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	if err := h.memberService.LeaveBoard(c.Request.Context(), auth.UserID, boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// ChangeMemberRole godoc
// @Summary      멤버 역할 변경
// @Description  멤버의 역할을 변경합니다 (소유자 전용, 소유자 역할은 변경 불가)
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Param        request body dto.ChangeRoleRequest true "역할 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.MemberResponse}
// @Failure      400 {object} response.ErrorResponse "잘못된 역할 또는 소유자 역할 변경 시도"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "멤버를 찾을 수 없음"
// @Router       /{boardId}/members/{userId}/role [put]
func (h *MemberHandler) ChangeMemberRole(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	memberID, ok := parseMemberID(c)
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	member, err := h.memberService.ChangeMemberRole(c.Request.Context(), auth.UserID, boardID, memberID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, member)
}
