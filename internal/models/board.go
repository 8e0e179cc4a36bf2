package models

import (
	"time"

	"gorm.io/gorm"
)

type Board struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	CreatedByID uint64         `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedBy User          `gorm:"foreignKey:CreatedByID" json:"-"`
	Members   []BoardMember `gorm:"foreignKey:BoardID" json:"members,omitempty"`
	Tasks     []Task        `gorm:"foreignKey:BoardID" json:"-"`
}

// HasMember reports whether the user appears in the board's member set.
// Members must be preloaded.
func (b *Board) HasMember(userID uint64) bool {
	for _, m := range b.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// MemberIDs returns the user ids of the board's member set.
func (b *Board) MemberIDs() []uint64 {
	ids := make([]uint64, 0, len(b.Members))
	for _, m := range b.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}
