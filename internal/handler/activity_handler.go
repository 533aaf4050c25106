package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"warroom-board-api/internal/response"
	"warroom-board-api/internal/service"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// GetBoardActivity godoc
// @Summary      Board 활동 로그 조회
// @Description  보드의 활동 로그를 최신순으로 조회합니다
// @Tags         activity
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        limit query int false "조회 개수 (기본 50, 최대 100)"
// @Param        offset query int false "오프셋"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ActivityLogResponse}
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /{boardId}/activity [get]
func (h *ActivityHandler) GetBoardActivity(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.activityService.GetBoardActivity(c.Request.Context(), auth.UserID, boardID, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, logs)
}
