package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityAction defines the recorded user activity kinds
type ActivityAction string

const (
	ActionDonate ActivityAction = "donate"
)

type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Gender       string     `json:"gender" gorm:"not null"`
	Contact      string     `json:"contact" gorm:"not null"`
	Address      string     `json:"address" gorm:"not null"`
	Activities   []Activity `json:"activities,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Activity is one append-only entry in a user's activity log.
// Auto-increment row IDs preserve insertion order.
type Activity struct {
	ID        uint           `json:"-" gorm:"primaryKey"`
	UserID    string         `json:"-" gorm:"index;not null"`
	Action    ActivityAction `json:"action" gorm:"not null"`
	Timestamp time.Time      `json:"timestamp" gorm:"not null"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
