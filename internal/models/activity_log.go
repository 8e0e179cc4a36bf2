package models

import "time"

type ActivityAction string

const (
	ActionTaskCreated       ActivityAction = "TASK_CREATED"
	ActionTaskUpdated       ActivityAction = "TASK_UPDATED"
	ActionTaskStatusChanged ActivityAction = "TASK_STATUS_CHANGED"
	ActionTaskDeleted       ActivityAction = "TASK_DELETED"
)

// ActivityLog is an immutable audit record of a task lifecycle event. Entries
// are only ever appended; they keep their task and board ids even after the
// referenced records are deleted.
type ActivityLog struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	BoardID   uint64         `gorm:"not null;index" json:"board_id"`
	TaskID    uint64         `gorm:"not null;index" json:"task_id"`
	UserID    uint64         `gorm:"not null" json:"user_id"`
	Action    ActivityAction `gorm:"type:varchar(32);not null" json:"action"`
	OldStatus *TaskStatus    `gorm:"type:varchar(20)" json:"old_status"`
	NewStatus *TaskStatus    `gorm:"type:varchar(20)" json:"new_status"`
	CreatedAt time.Time      `json:"created_at"`
}
