package models

import "time"

// BoardMember links a user to a board. Membership is a set: the composite
// primary key makes duplicate adds impossible at the storage layer.
type BoardMember struct {
	BoardID   uint64    `gorm:"primarykey" json:"board_id"`
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Board Board `gorm:"foreignKey:BoardID" json:"board,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
