package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusReady      TaskStatus = "Ready"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusTesting    TaskStatus = "Testing"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Valid reports whether the status is one of the workflow values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusReady, TaskStatusInProgress, TaskStatusTesting, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// Valid reports whether the priority is one of the known values.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	BoardID      uint64         `gorm:"not null;index" json:"board_id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     string         `gorm:"type:varchar(100)" json:"category"`
	Priority     TaskPriority   `gorm:"type:varchar(20);not null;default:'Low'" json:"priority"`
	Status       TaskStatus     `gorm:"type:varchar(20);not null;default:'Ready'" json:"status"`
	DueDate      *time.Time     `json:"due_date"`
	AssignedToID uint64         `gorm:"not null" json:"assigned_to"`
	CreatedByID  uint64         `gorm:"not null" json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Board      Board `gorm:"foreignKey:BoardID" json:"-"`
	AssignedTo User  `gorm:"foreignKey:AssignedToID" json:"-"`
	CreatedBy  User  `gorm:"foreignKey:CreatedByID" json:"-"`
}
