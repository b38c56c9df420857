package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Exactly one PARTNER row may reference a MAIN_USER via
// PartnerID at a time; multi-partner is unsupported.
const (
	RoleMainUser = "MAIN_USER"
	RolePartner  = "PARTNER"
)

// Need is the main user's currently expressed need.
type Need string

const (
	NeedRest            Need = "REST"
	NeedMotivation      Need = "MOTIVATION"
	NeedSupport         Need = "SUPPORT"
	NeedSpace           Need = "SPACE"
	NeedSilence         Need = "SILENCE"
	NeedGentleReminders Need = "GENTLE_REMINDERS"
)

// NeedsCheckin reports whether the need is one the emotional check-in
// job follows up on. SILENCE and GENTLE_REMINDERS opt out.
func (n Need) NeedsCheckin() bool {
	switch n {
	case NeedRest, NeedMotivation, NeedSupport, NeedSpace:
		return true
	}
	return false
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `json:"name"`
	Phone    *string   `json:"phone"`

	Role      string     `gorm:"type:varchar(20);not null;index" json:"role"`
	PartnerID *uuid.UUID `gorm:"type:uuid;index" json:"partnerId"` // set on PARTNER rows, points at the MAIN_USER

	// Notification preferences are nullable on purpose: rows created
	// before these columns existed carry NULL until the startup
	// backfill coalesces them.
	NotificationsEnabled    *bool `json:"notificationsEnabled"`
	ShowWater               *bool `json:"showWater"`
	ShowRest                *bool `json:"showRest"`
	ShowSkincare            *bool `json:"showSkincare"`
	ShowPeriod              *bool `json:"showPeriod"`
	PeriodReminderEnabled   *bool `json:"periodReminderEnabled"`
	EmotionalCheckinEnabled *bool `json:"emotionalCheckinEnabled"`
	WaterReminderFrequency  *int  `json:"waterReminderFrequency"` // hours between water reminders

	DailyMotivationTime  string `gorm:"type:varchar(5)" json:"dailyMotivationTime"`  // "HH:MM"
	SkincareReminderTime string `gorm:"type:varchar(5)" json:"skincareReminderTime"` // "HH:MM", evening slot derived
	EmotionalCheckinTime string `gorm:"type:varchar(5)" json:"emotionalCheckinTime"` // "HH:MM"

	PeriodStartDate *time.Time `json:"periodStartDate"`
	CurrentNeed     Need       `gorm:"type:varchar(20)" json:"currentNeed"`
	GlobalSharing   bool       `gorm:"default:true" json:"globalSharing"`

	LastLogin *time.Time `json:"lastLogin"`

	gorm.Model
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

// The accessors below mirror the startup backfill defaults, so a row
// read before the backfill ran behaves the same as one read after.

func (u *User) NotificationsOn() bool {
	return u.NotificationsEnabled == nil || *u.NotificationsEnabled
}

func (u *User) PeriodRemindersOn() bool {
	return u.PeriodReminderEnabled == nil || *u.PeriodReminderEnabled
}

func (u *User) CheckinOn() bool {
	return u.EmotionalCheckinEnabled == nil || *u.EmotionalCheckinEnabled
}

func (u *User) WaterFrequency() int {
	if u.WaterReminderFrequency == nil || *u.WaterReminderFrequency < 1 {
		return 1
	}
	return *u.WaterReminderFrequency
}

func (u *User) MotivationTime() string {
	if u.DailyMotivationTime == "" {
		return "08:00"
	}
	return u.DailyMotivationTime
}

func (u *User) SkincareTime() string {
	if u.SkincareReminderTime == "" {
		return "08:00"
	}
	return u.SkincareReminderTime
}

func (u *User) CheckinTime() string {
	if u.EmotionalCheckinTime == "" {
		return "20:00"
	}
	return u.EmotionalCheckinTime
}

// DisplayName is the name used inside reminder texts.
func (u *User) DisplayName() string {
	if u.Name == "" {
		return "love"
	}
	return u.Name
}
