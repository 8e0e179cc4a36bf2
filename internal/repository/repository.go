package repository

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(email string) (*models.User, error)

	// List retrieves all users, newest first
	List() ([]models.User, error)

	// Delete soft deletes a user
	Delete(id uint64) error
}

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// Create creates a new board
	Create(board *models.Board) error

	// FindByID finds a board by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Board, error)

	// ListAll retrieves every board, newest first
	ListAll() ([]models.Board, error)

	// ListByMember retrieves the boards a user is a member of, newest first
	ListByMember(userID uint64) ([]models.Board, error)

	// Update updates a board
	Update(board *models.Board) error

	// Delete soft deletes a board and its memberships
	Delete(id uint64) error

	// ReplaceMembers replaces the board's member set with the given user IDs
	ReplaceMembers(boardID uint64, userIDs []uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	BoardID  uint64
	Status   *models.TaskStatus
	Priority *models.TaskPriority
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves a board's tasks with filtering, newest first
	List(filter TaskFilter) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete soft deletes a task
	Delete(id uint64) error
}

// ActivityLogRepository persists the append-only audit trail. Entries are
// never updated or removed.
type ActivityLogRepository interface {
	// Append writes a new activity log entry
	Append(ctx context.Context, entry *models.ActivityLog) error
}
