package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/policy"
	"github.com/taskboard/taskboard-api/internal/repository"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskTitleRequired = errors.New("task title is required")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidPriority   = errors.New("invalid priority value")
	ErrActivityLogFailed = errors.New("failed to record task activity")
)

// TaskService handles the task lifecycle. Every externally visible mutation
// appends exactly one activity log entry.
type TaskService struct {
	taskRepo repository.TaskRepository
	logRepo  repository.ActivityLogRepository
	pol      *policy.Policy
	logger   zerolog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	logRepo repository.ActivityLogRepository,
	pol *policy.Policy,
	logger zerolog.Logger,
) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logRepo:  logRepo,
		pol:      pol,
		logger:   logger,
	}
}

// CreateTaskInput represents input for creating a task. Status and Priority
// are optional; zero values fall back to the workflow defaults.
type CreateTaskInput struct {
	BoardID      uint64
	Title        string
	Description  string
	Category     string
	Priority     models.TaskPriority
	Status       models.TaskStatus
	DueDate      *time.Time
	AssignedToID uint64
}

// CreateTask creates a task on a board the actor can access. Enum fields are
// validated before the board is resolved so malformed input is reported even
// to callers without board access.
func (s *TaskService) CreateTask(ctx context.Context, actor *models.User, input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTaskTitleRequired
	}

	if input.Status != "" && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	if _, err := s.pol.AuthorizeBoard(input.BoardID, actor); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.TaskStatusReady
	}
	priority := input.Priority
	if priority == "" {
		priority = models.TaskPriorityLow
	}
	assignee := input.AssignedToID
	if assignee == 0 {
		assignee = actor.ID
	}

	task := &models.Task{
		BoardID:      input.BoardID,
		Title:        title,
		Description:  input.Description,
		Category:     input.Category,
		Priority:     priority,
		Status:       status,
		DueDate:      input.DueDate,
		AssignedToID: assignee,
		CreatedByID:  actor.ID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	entry := &models.ActivityLog{
		BoardID:   task.BoardID,
		TaskID:    task.ID,
		UserID:    actor.ID,
		Action:    models.ActionTaskCreated,
		OldStatus: nil,
		NewStatus: &task.Status,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrActivityLogFailed, err)
	}

	return task, nil
}

// ListTasksInput represents filters for listing a board's tasks.
type ListTasksInput struct {
	BoardID  uint64
	Status   models.TaskStatus
	Priority models.TaskPriority
}

// ListTasks returns a board's tasks, newest first. Filters are validated
// before the board-scope gate runs.
func (s *TaskService) ListTasks(actor *models.User, input ListTasksInput) ([]models.Task, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	if _, err := s.pol.AuthorizeBoard(input.BoardID, actor); err != nil {
		return nil, err
	}

	filter := repository.TaskFilter{BoardID: input.BoardID}
	if input.Status != "" {
		filter.Status = &input.Status
	}
	if input.Priority != "" {
		filter.Priority = &input.Priority
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTaskInput carries a partial update. Nil pointers mean the field was
// not part of the patch and must stay unchanged.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Category     *string
	Priority     *models.TaskPriority
	Status       *models.TaskStatus
	DueDate      *time.Time
	ClearDueDate bool
	AssignedToID *uint64
}

// UpdateTask applies a partial update to a task on a board the actor can
// access. Out-of-enum status or priority rejects the whole patch before
// anything is stored. A blank title is ignored rather than rejected; the
// stored title is kept. The workflow is advisory: any status can be set from
// any other, and only a genuine status change is logged as a status change.
func (s *TaskService) UpdateTask(ctx context.Context, actor *models.User, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if _, err := s.pol.AuthorizeBoard(task.BoardID, actor); err != nil {
		return nil, err
	}

	oldStatus := task.Status

	if input.Title != nil {
		if trimmed := strings.TrimSpace(*input.Title); trimmed != "" {
			task.Title = trimmed
		}
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Category != nil {
		task.Category = *input.Category
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.AssignedToID != nil {
		task.AssignedToID = *input.AssignedToID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	statusChanged := input.Status != nil && *input.Status != oldStatus

	entry := &models.ActivityLog{
		BoardID: task.BoardID,
		TaskID:  task.ID,
		UserID:  actor.ID,
		Action:  models.ActionTaskUpdated,
	}
	if statusChanged {
		entry.Action = models.ActionTaskStatusChanged
		entry.OldStatus = &oldStatus
		entry.NewStatus = &task.Status
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrActivityLogFailed, err)
	}

	return task, nil
}

// DeleteTask removes a task. Deletion is role-gated: only administrators may
// purge data, regardless of board membership. The activity entry is written
// after the delete; if the append fails the delete stands, the failure is
// reported, and nothing is rolled back.
func (s *TaskService) DeleteTask(ctx context.Context, actor *models.User, taskID uint64) error {
	if err := s.pol.RequireAdmin(actor); err != nil {
		return err
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	lastStatus := task.Status
	entry := &models.ActivityLog{
		BoardID:   task.BoardID,
		TaskID:    task.ID,
		UserID:    actor.ID,
		Action:    models.ActionTaskDeleted,
		OldStatus: &lastStatus,
		NewStatus: nil,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Error().Err(err).
			Uint64("task_id", task.ID).
			Uint64("board_id", task.BoardID).
			Msg("task deleted but activity append failed")
		return fmt.Errorf("%w: %v", ErrActivityLogFailed, err)
	}

	return nil
}
