package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/response"
	"warroom-board-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

func parseCommentID(c *gin.Context) (uuid.UUID, bool) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return uuid.Nil, false
	}
	return commentID, true
}

// AddComment godoc
// @Summary      Comment 작성
// @Description  태스크에 댓글을 추가합니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "Comment 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=domain.Comment}
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Task를 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId}/tasks/{taskId}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
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
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), auth.UserID, boardID, columnID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// EditComment godoc
// @Summary      Comment 수정
// @Description  댓글 내용을 수정합니다 (작성자 전용)
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "Comment 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.Comment}
// @Failure      403 {object} response.ErrorResponse "작성자가 아님"
// @Failure      404 {object} response.ErrorResponse "Comment를 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId}/tasks/{taskId}/comments/{commentId} [put]
func (h *CommentHandler) EditComment(c *gin.Context) {
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
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}
	commentID, ok := parseCommentID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.EditComment(c.Request.Context(), auth.UserID, boardID, columnID, taskID, commentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Comment 삭제
// @Description  댓글을 삭제합니다 (작성자 전용)
// @Tags         comments
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse "작성자가 아님"
// @Failure      404 {object} response.ErrorResponse "Comment를 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId}/tasks/{taskId}/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
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
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}
	commentID, ok := parseCommentID(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), auth.UserID, boardID, columnID, taskID, commentID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}
