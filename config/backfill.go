package config

import (
	"log"

	"gorm.io/gorm"
)

// BackfillNotificationDefaults coalesces notification-preference columns
// that are still NULL (rows created before the columns existed) to safe
// defaults. The WHERE guard makes repeated runs no-ops, and COALESCE
// never overwrites a value a user already set.
//
// Runs once per process start and must never abort startup: failures
// (schema not yet migrated, transient DB errors) are logged and skipped.
func BackfillNotificationDefaults(db *gorm.DB) {
	result := db.Exec(`
		UPDATE users
		SET notifications_enabled     = COALESCE(notifications_enabled, TRUE),
		    show_water                = COALESCE(show_water, TRUE),
		    show_rest                 = COALESCE(show_rest, TRUE),
		    show_skincare             = COALESCE(show_skincare, TRUE),
		    show_period               = COALESCE(show_period, TRUE),
		    period_reminder_enabled   = COALESCE(period_reminder_enabled, TRUE),
		    emotional_checkin_enabled = COALESCE(emotional_checkin_enabled, TRUE),
		    water_reminder_frequency  = COALESCE(water_reminder_frequency, 1)
		WHERE notifications_enabled IS NULL
	`)
	if result.Error != nil {
		log.Printf("Notification defaults backfill skipped: %v", result.Error)
		return
	}
	log.Printf("Notification defaults backfilled - %d user(s) updated", result.RowsAffected)
}
