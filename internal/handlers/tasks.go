package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/dto"
	apierrors "github.com/taskboard/taskboard-api/internal/errors"
	"github.com/taskboard/taskboard-api/internal/middleware"
	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/policy"
	"github.com/taskboard/taskboard-api/internal/services"
)

// TaskHandler coordinates task lifecycle handlers.
type TaskHandler struct {
	taskService       *services.TaskService
	suggestionService *services.SuggestionService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, suggestionService *services.SuggestionService) *TaskHandler {
	return &TaskHandler{
		taskService:       taskService,
		suggestionService: suggestionService,
	}
}

// CreateTask creates a task on a board.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid board ID")
		return
	}

	type CreateTaskRequest struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Category    string     `json:"category"`
		Priority    string     `json:"priority"`
		Status      string     `json:"status"`
		DueDate     *time.Time `json:"due_date"`
		AssignedTo  uint64     `json:"assigned_to"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), actor, services.CreateTaskInput{
		BoardID:      boardID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Priority:     models.TaskPriority(req.Priority),
		Status:       models.TaskStatus(req.Status),
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedTo,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListTasks returns a board's tasks with optional status and priority filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid board ID")
		return
	}

	tasks, err := h.taskService.ListTasks(actor, services.ListTasksInput{
		BoardID:  boardID,
		Status:   models.TaskStatus(c.Query("status")),
		Priority: models.TaskPriority(c.Query("priority")),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// UpdateTask applies a partial update. The raw body is inspected so that
// absent fields are left untouched.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{}
	if v, ok := raw["title"]; ok {
		if s, ok := v.(string); ok {
			input.Title = &s
		}
	}
	if v, ok := raw["description"]; ok {
		if s, ok := v.(string); ok {
			input.Description = &s
		}
	}
	if v, ok := raw["category"]; ok {
		if s, ok := v.(string); ok {
			input.Category = &s
		}
	}
	if v, ok := raw["priority"]; ok {
		if s, ok := v.(string); ok && s != "" {
			p := models.TaskPriority(s)
			input.Priority = &p
		}
	}
	if v, ok := raw["status"]; ok {
		if s, ok := v.(string); ok && s != "" {
			st := models.TaskStatus(s)
			input.Status = &st
		}
	}
	if v, ok := raw["due_date"]; ok {
		switch value := v.(type) {
		case nil:
			input.ClearDueDate = true
		case string:
			if value == "" {
				input.ClearDueDate = true
			} else if parsed, err := time.Parse(time.RFC3339, value); err == nil {
				input.DueDate = &parsed
			}
		}
	}
	if v, ok := raw["assigned_to"]; ok {
		if f, ok := v.(float64); ok && f > 0 {
			id := uint64(f)
			input.AssignedToID = &id
		}
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), actor, taskID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task. Administrator only.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), actor, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// SuggestTitle derives a short title from a task description.
func (h *TaskHandler) SuggestTitle(c *gin.Context) {
	type SuggestTitleRequest struct {
		Description string `json:"description"`
	}

	var req SuggestTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	title := h.suggestionService.SuggestTitle(c.Request.Context(), req.Description)
	c.JSON(http.StatusOK, gin.H{"title": title})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskTitleRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, policy.ErrBoardNotFound):
		apierrors.NotFound(c, "Board not found")
	case errors.Is(err, policy.ErrNotBoardMember):
		apierrors.Forbidden(c, "")
	case errors.Is(err, policy.ErrAdminRequired):
		apierrors.Forbidden(c, "administrator role required")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
