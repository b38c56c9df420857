package config

import (
	"fmt"
	"strings"
	"testing"

	"companion-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBackfillDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, mutate func(*models.User)) models.User {
	t.Helper()
	user := models.User{
		Email:    uuid.NewString() + "@example.com",
		Password: "secret",
		Name:     "Maya",
		Role:     models.RoleMainUser,
	}
	if mutate != nil {
		mutate(&user)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func TestBackfillFillsNullPreferences(t *testing.T) {
	db := newBackfillDB(t)
	legacy := createUser(t, db, nil)

	BackfillNotificationDefaults(db)

	var got models.User
	if err := db.First(&got, "id = ?", legacy.ID).Error; err != nil {
		t.Fatal(err)
	}
	for name, flag := range map[string]*bool{
		"notifications_enabled":     got.NotificationsEnabled,
		"show_water":                got.ShowWater,
		"show_rest":                 got.ShowRest,
		"show_skincare":             got.ShowSkincare,
		"show_period":               got.ShowPeriod,
		"period_reminder_enabled":   got.PeriodReminderEnabled,
		"emotional_checkin_enabled": got.EmotionalCheckinEnabled,
	} {
		if flag == nil || !*flag {
			t.Fatalf("%s not backfilled to true: %v", name, flag)
		}
	}
	if got.WaterReminderFrequency == nil || *got.WaterReminderFrequency != 1 {
		t.Fatalf("water_reminder_frequency not backfilled to 1: %v", got.WaterReminderFrequency)
	}
}

func TestBackfillLeavesExplicitChoicesAlone(t *testing.T) {
	db := newBackfillDB(t)
	optedOut := createUser(t, db, func(u *models.User) {
		u.NotificationsEnabled = boolPtr(false)
		u.ShowWater = boolPtr(false)
		u.WaterReminderFrequency = intPtr(3)
	})

	BackfillNotificationDefaults(db)

	var got models.User
	if err := db.First(&got, "id = ?", optedOut.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.NotificationsEnabled == nil || *got.NotificationsEnabled {
		t.Fatal("explicit opt-out was overwritten")
	}
	if got.ShowWater == nil || *got.ShowWater {
		t.Fatal("explicit show_water=false was overwritten")
	}
	if got.WaterReminderFrequency == nil || *got.WaterReminderFrequency != 3 {
		t.Fatalf("explicit frequency was overwritten: %v", got.WaterReminderFrequency)
	}
}

func TestBackfillRunsTwiceWithoutChanges(t *testing.T) {
	db := newBackfillDB(t)
	legacy := createUser(t, db, nil)

	BackfillNotificationDefaults(db)

	var first models.User
	if err := db.First(&first, "id = ?", legacy.ID).Error; err != nil {
		t.Fatal(err)
	}
	// Flip one flag back the way a user would, then re-run.
	if err := db.Model(&models.User{}).Where("id = ?", legacy.ID).Update("show_water", false).Error; err != nil {
		t.Fatal(err)
	}

	BackfillNotificationDefaults(db)

	var second models.User
	if err := db.First(&second, "id = ?", legacy.ID).Error; err != nil {
		t.Fatal(err)
	}
	if second.ShowWater == nil || *second.ShowWater {
		t.Fatal("second run re-enabled a disabled preference")
	}
}
