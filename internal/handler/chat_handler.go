package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/response"
	"warroom-board-api/internal/service"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// GetChatHistory godoc
// @Summary      Board 채팅 기록 조회
// @Description  보드의 채팅 기록을 오래된 순으로 조회합니다
// @Tags         chat
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        limit query int false "조회 개수 (기본 100, 최대 200)"
// @Param        offset query int false "오프셋"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ChatMessageResponse}
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId}/chat [get]
func (h *ChatHandler) GetChatHistory(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.chatService.GetHistory(c.Request.Context(), auth.UserID, boardID, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, messages)
}

// SendChatMessage godoc
// @Summary      채팅 메시지 전송
// @Description  보드 채팅 메시지를 저장하고 접속 중인 멤버에게 브로드캐스트합니다
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.SendMessageRequest true "메시지 전송 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.ChatMessageResponse}
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId}/chat [post]
func (h *ChatHandler) SendChatMessage(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), auth.UserID, boardID, req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, message)
}
