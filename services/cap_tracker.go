package services

import (
	"sync"
	"time"

	"companion-backend/models"
	"companion-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CapTracker counts and records notification sends against each
// category's daily cap. Counting keys off sent_at >= local midnight, so
// caps reset at midnight without any scheduled cleanup.
type CapTracker struct {
	db    *gorm.DB
	locks sync.Map // "userID|category" -> *sync.Mutex
}

func NewCapTracker(db *gorm.DB) *CapTracker {
	return &CapTracker{db: db}
}

func (t *CapTracker) lock(userID uuid.UUID, category models.Category) *sync.Mutex {
	key := userID.String() + "|" + string(category)
	mu, _ := t.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CountToday returns the number of recorded sends for the user and
// category on now's calendar day.
func (t *CapTracker) CountToday(userID uuid.UUID, category models.Category, now time.Time) (int, error) {
	var count int64
	err := t.db.Model(&models.NotificationLog{}).
		Where("user_id = ? AND category = ? AND sent_at >= ?", userID, category, utils.BeginningOfDay(now)).
		Count(&count).Error
	return int(count), err
}

// AtOrOverCap reports whether the user has reached the category's cap today.
func (t *CapTracker) AtOrOverCap(userID uuid.UUID, category models.Category, now time.Time) (bool, error) {
	count, err := t.CountToday(userID, category, now)
	if err != nil {
		return false, err
	}
	return count >= models.DailyCap(category), nil
}

// Record appends one log entry, but only while today's count is below
// the category cap: the check and the insert run as a single
// conditional INSERT, and a per-(user, category) mutex serializes
// in-process callers, so overlapping ticks cannot push the log past the
// cap. Returns false when the cap was already consumed.
func (t *CapTracker) Record(userID uuid.UUID, category models.Category, now time.Time) (bool, error) {
	mu := t.lock(userID, category)
	mu.Lock()
	defer mu.Unlock()

	result := t.db.Exec(`
		INSERT INTO notification_logs (id, user_id, category, sent_at, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?
		WHERE (
			SELECT COUNT(*) FROM notification_logs
			WHERE user_id = ? AND category = ? AND sent_at >= ? AND deleted_at IS NULL
		) < ?`,
		uuid.New(), userID, category, now, now, now,
		userID, category, utils.BeginningOfDay(now), models.DailyCap(category),
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
