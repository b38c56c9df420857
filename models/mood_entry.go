package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoodEntry is one mood log per user per calendar day. Date is stored
// floored to local midnight so the (user, day) uniqueness holds.
type MoodEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mood_user_date,priority:1" json:"userId"`
	Date    time.Time `gorm:"not null;uniqueIndex:idx_mood_user_date,priority:2" json:"date"`
	Mood    string    `gorm:"type:varchar(40);not null" json:"mood"`
	Message string    `gorm:"type:text" json:"message"`
	Shared  bool      `gorm:"default:false" json:"shared"`

	gorm.Model
}

func (m *MoodEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
