package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/response"
	"warroom-board-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// parseBoardID extracts and validates the boardId path parameter
func parseBoardID(c *gin.Context) (uuid.UUID, bool) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return uuid.Nil, false
	}
	return boardID, true
}

// CreateBoard godoc
// @Summary      Board 생성
// @Description  기본 컬럼(To Do, In Progress, Done)과 함께 새 보드를 생성합니다
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       / [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetMyBoards godoc
// @Summary      내 Board 목록 조회
// @Description  소유하거나 멤버로 속한 보드를 조회합니다 (내가 삭제한 보드 제외)
// @Tags         boards
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardSummaryResponse}
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       / [get]
func (h *BoardHandler) GetMyBoards(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	boards, err := h.boardService.GetMyBoards(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// GetBoard godoc
// @Summary      Board 상세 조회
// @Description  컬럼, 태스크, 댓글을 포함한 보드 전체를 조회합니다
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), auth.UserID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// UpdateBoard godoc
// @Summary      Board 수정
// @Description  보드 제목을 수정합니다 (admin 전용)
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateBoardRequest true "Board 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "동시 수정 충돌"
// @Router       /{boardId} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), auth.UserID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// CompleteBoard godoc
// @Summary      Board 완료 처리
// @Description  보드 상태를 completed로 변경합니다 (admin 전용)
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId}/complete [post]
func (h *BoardHandler) CompleteBoard(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	board, err := h.boardService.CompleteBoard(c.Request.Context(), auth.UserID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// SoftDeleteBoard godoc
// @Summary      Board 숨기기 (soft delete)
// @Description  요청자 본인에게만 보드를 숨깁니다. 다른 멤버에게는 영향이 없습니다
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId} [delete]
func (h *BoardHandler) SoftDeleteBoard(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	if err := h.boardService.SoftDeleteBoard(c.Request.Context(), auth.UserID, boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// PermanentDeleteBoard godoc
// @Summary      Board 영구 삭제
// @Description  보드와 활동 로그, 채팅 기록을 모두 삭제합니다 (소유자 전용)
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId}/permanent [delete]
func (h *BoardHandler) PermanentDeleteBoard(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	if err := h.boardService.PermanentDeleteBoard(c.Request.Context(), auth.UserID, boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}
