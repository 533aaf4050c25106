package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/response"
	"warroom-board-api/internal/service"
)

type ColumnHandler struct {
	columnService service.ColumnService
}

func NewColumnHandler(columnService service.ColumnService) *ColumnHandler {
	return &ColumnHandler{
		columnService: columnService,
	}
}

func parseColumnID(c *gin.Context) (uuid.UUID, bool) {
	columnID, err := uuid.Parse(c.Param("columnId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid column ID")
		return uuid.Nil, false
	}
	return columnID, true
}

// CreateColumn godoc
// @Summary      Column 생성
// @Description  보드 끝에 새 컬럼을 추가합니다 (admin 전용)
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateColumnRequest true "Column 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=domain.Column}
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId}/columns [post]
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.CreateColumn(c.Request.Context(), auth.UserID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, column)
}

// RenameColumn godoc
// @Summary      Column 이름 변경
// @Description  컬럼 제목을 변경합니다 (admin 전용)
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.RenameColumnRequest true "Column 이름 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.Column}
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board 또는 Column을 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId} [put]
func (h *ColumnHandler) RenameColumn(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	columnID, ok := parseColumnID(c)
	if !ok {
		return
	}

	var req dto.RenameColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.RenameColumn(c.Request.Context(), auth.UserID, boardID, columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}

// DeleteColumn godoc
// @Summary      Column 삭제
// @Description  컬럼과 그 안의 모든 태스크를 삭제합니다 (admin 전용)
// @Tags         columns
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board 또는 Column을 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId} [delete]
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	columnID, ok := parseColumnID(c)
	if !ok {
		return
	}

	if err := h.columnService.DeleteColumn(c.Request.Context(), auth.UserID, boardID, columnID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// ReorderColumns godoc
// @Summary      Column 순서 변경
// @Description  컬럼을 from 위치에서 to 위치로 이동합니다 (admin 전용, 0-based)
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.ReorderColumnsRequest true "순서 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.ErrorResponse "인덱스 범위 초과"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Router       /{boardId}/columns/reorder [put]
func (h *ColumnHandler) ReorderColumns(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.columnService.ReorderColumns(c.Request.Context(), auth.UserID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}
