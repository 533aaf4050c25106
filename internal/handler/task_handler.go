package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/response"
	"warroom-board-api/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func parseTaskID(c *gin.Context) (uuid.UUID, bool) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid task ID")
		return uuid.Nil, false
	}
	return taskID, true
}

// CreateTask godoc
// @Summary      Task 생성
// @Description  컬럼 끝에 새 태스크를 추가합니다
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.CreateTaskRequest true "Task 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=domain.Task}
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Board 또는 Column을 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
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

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), auth.UserID, boardID, columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, task)
}

// EditTask godoc
// @Summary      Task 수정
// @Description  태스크 제목과 설명을 수정합니다
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.EditTaskRequest true "Task 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.Task}
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Task를 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId}/tasks/{taskId} [put]
func (h *TaskHandler) EditTask(c *gin.Context) {
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

	var req dto.EditTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.EditTask(c.Request.Context(), auth.UserID, boardID, columnID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Task 삭제
// @Description  태스크와 그 댓글을 삭제합니다
// @Tags         tasks
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Task를 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
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

	if err := h.taskService.DeleteTask(c.Request.Context(), auth.UserID, boardID, columnID, taskID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// AssignTask godoc
// @Summary      Task 담당자 지정
// @Description  보드 멤버를 태스크 담당자로 지정합니다
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.AssignTaskRequest true "담당자 지정 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.Task}
// @Failure      400 {object} response.ErrorResponse "담당자가 보드 멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "Task를 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId}/tasks/{taskId}/assign [put]
func (h *TaskHandler) AssignTask(c *gin.Context) {
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

	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.AssignTask(c.Request.Context(), auth.UserID, boardID, columnID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// MoveTask godoc
// @Summary      Task 이동
// @Description  태스크를 다른 컬럼 끝으로 이동합니다
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.MoveTaskRequest true "Task 이동 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.Task}
// @Failure      404 {object} response.ErrorResponse "Column 또는 Task를 찾을 수 없음"
// @Router       /{boardId}/tasks/move [post]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.MoveTask(c.Request.Context(), auth.UserID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// ReorderTasks godoc
// @Summary      Task 순서 변경
// @Description  컬럼 내에서 태스크를 from 위치에서 to 위치로 이동합니다 (0-based)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.ReorderTasksRequest true "순서 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.Column}
// @Failure      400 {object} response.ErrorResponse "인덱스 범위 초과"
// @Failure      404 {object} response.ErrorResponse "Column을 찾을 수 없음"
// @Router       /{boardId}/columns/{columnId}/tasks/reorder [put]
func (h *TaskHandler) ReorderTasks(c *gin.Context) {
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

	var req dto.ReorderTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.taskService.ReorderTasks(c.Request.Context(), auth.UserID, boardID, columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}
