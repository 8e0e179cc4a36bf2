package dto

import (
	"time"

	"github.com/taskboard/taskboard-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never leaves
// the service.
type UserDTO struct {
	ID    uint64      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// BoardDTO represents a board in API responses.
type BoardDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Members   []uint64  `json:"members"`
	CreatedBy uint64    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskDTO represents a task in API responses.
type TaskDTO struct {
	ID          uint64              `json:"id"`
	BoardID     uint64              `json:"board_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	DueDate     *time.Time          `json:"due_date"`
	AssignedTo  uint64              `json:"assigned_to"`
	CreatedBy   uint64              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}

// ToBoardDTO converts a Board model to BoardDTO. Members must be preloaded.
func ToBoardDTO(board models.Board) BoardDTO {
	return BoardDTO{
		ID:        board.ID,
		Name:      board.Name,
		Members:   board.MemberIDs(),
		CreatedBy: board.CreatedByID,
		CreatedAt: board.CreatedAt,
	}
}

// ToBoardDTOs converts a slice of boards
func ToBoardDTOs(boards []models.Board) []BoardDTO {
	out := make([]BoardDTO, len(boards))
	for i, b := range boards {
		out[i] = ToBoardDTO(b)
	}
	return out
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		BoardID:     task.BoardID,
		Title:       task.Title,
		Description: task.Description,
		Category:    task.Category,
		Priority:    task.Priority,
		Status:      task.Status,
		DueDate:     task.DueDate,
		AssignedTo:  task.AssignedToID,
		CreatedBy:   task.CreatedByID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}
