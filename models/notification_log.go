package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category identifies one of the six reminder kinds. The set is closed:
// adding a category means extending DailyCap and the message selectors,
// which the compiler then checks.
type Category string

const (
	CategoryDailyMotivation  Category = "daily_motivation"
	CategoryWater            Category = "water"
	CategorySkincareAM       Category = "skincare_am"
	CategorySkincarePM       Category = "skincare_pm"
	CategoryPeriod           Category = "period"
	CategoryEmotionalCheckin Category = "emotional_checkin"
)

// DailyCap is the maximum number of successful sends permitted per user
// per category per local calendar day.
func DailyCap(c Category) int {
	switch c {
	case CategoryDailyMotivation:
		return 1
	case CategoryWater:
		return 8
	case CategorySkincareAM, CategorySkincarePM:
		return 1
	case CategoryPeriod:
		return 4
	case CategoryEmotionalCheckin:
		return 3
	}
	return 0
}

// NotificationLog is an append-only fact: one row per successful
// dispatch. Rows are never updated or deleted; they exist solely to
// compute today's send count per (user, category).
type NotificationLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_notification_user_category,priority:1" json:"userId"`
	Category Category  `gorm:"type:varchar(30);not null;index:idx_notification_user_category,priority:2" json:"category"`
	SentAt   time.Time `gorm:"not null;index" json:"sentAt"`

	gorm.Model
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
