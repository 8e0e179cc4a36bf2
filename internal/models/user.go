package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTeamMember Role = "TEAM_MEMBER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeamMember
}

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role           `gorm:"type:varchar(20);not null;default:'TEAM_MEMBER'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedBoards []Board       `gorm:"foreignKey:CreatedByID" json:"-"`
	CreatedTasks  []Task        `gorm:"foreignKey:CreatedByID" json:"-"`
	Memberships   []BoardMember `gorm:"foreignKey:UserID" json:"-"`
}

// IsAdmin reports whether the user carries the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
