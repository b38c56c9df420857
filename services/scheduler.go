// services/scheduler.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"companion-backend/models"
	"companion-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	// One tick per minute; each job re-derives "is it my moment" from
	// the wall clock, so the tick itself carries no business logic.
	tickSpec = "* * * * *"

	waterWindowStart = 9
	waterWindowEnd   = 21

	// The evening skincare slot mirrors the configured morning time
	// thirteen hours later.
	skincareEveningOffset = 13

	periodCareWindowDays = 5

	dispatchWorkers = 4
)

var periodCareHours = map[int]bool{9: true, 13: true, 17: true, 21: true}

// SchedulerService drives the per-minute reminder tick. It owns no
// lifecycle beyond its cron handle: the DB connection is constructed
// and closed by main.
type SchedulerService struct {
	db       *gorm.DB
	caps     *CapTracker
	audience *AudienceResolver
	dispatch Dispatcher
	cron     *cron.Cron
}

func NewSchedulerService(db *gorm.DB, dispatch Dispatcher) *SchedulerService {
	return &SchedulerService{
		db:       db,
		caps:     NewCapTracker(db),
		audience: NewAudienceResolver(db),
		dispatch: dispatch,
	}
}

// StartScheduler begins ticking once per minute. Gated by CRON_ENABLED:
// anything other than a case-insensitive "true" leaves the scheduler
// off and the process dispatches nothing.
func (s *SchedulerService) StartScheduler() {
	if !strings.EqualFold(os.Getenv("CRON_ENABLED"), "true") {
		log.Println("CRON_ENABLED is not true - notification scheduler disabled")
		return
	}

	c := cron.New()
	c.AddFunc(tickSpec, func() { s.RunJobs(time.Now()) })
	c.Start()
	s.cron = c
	log.Println("Notification scheduler started (per-minute tick)")
}

func (s *SchedulerService) StopScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunJobs evaluates every reminder job for the given wall-clock moment.
// Jobs run concurrently; a panic or error in one is logged and does not
// block the others or the scheduler. The next tick retries naturally.
func (s *SchedulerService) RunJobs(now time.Time) {
	jobs := []struct {
		name string
		run  func(time.Time) error
	}{
		{"daily_motivation", s.runDailyMotivation},
		{"water", s.runWaterReminders},
		{"skincare", s.runSkincareReminders},
		{"period_care", s.runPeriodCareReminders},
		{"emotional_checkin", s.runEmotionalCheckins},
	}

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(name string, run func(time.Time) error) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[scheduler] %s job panicked: %v", name, r)
				}
			}()
			if err := run(now); err != nil {
				log.Printf("[scheduler] %s job error: %v", name, err)
			}
		}(job.name, job.run)
	}
	wg.Wait()
}

// eligibleMainUsers loads main users with a phone and notifications on,
// optionally narrowed by one of the show_* preference columns. NULL
// preference columns count as enabled (backfill may not have run yet).
func (s *SchedulerService) eligibleMainUsers(showColumn string) ([]models.User, error) {
	query := s.db.
		Where("role = ?", models.RoleMainUser).
		Where("phone IS NOT NULL AND phone <> ''").
		Where("(notifications_enabled IS NULL OR notifications_enabled = ?)", true)
	if showColumn != "" {
		query = query.Where("("+showColumn+" IS NULL OR "+showColumn+" = ?)", true)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// forEachUser fans users out to a small worker pool. Outcomes come back
// on a result channel; failures are logged with user context and never
// abort the remaining users.
func (s *SchedulerService) forEachUser(job string, users []models.User, send func(models.User) error) {
	if len(users) == 0 {
		return
	}

	type outcome struct {
		userID uuid.UUID
		err    error
	}

	tasks := make(chan models.User)
	results := make(chan outcome, len(users))

	workers := dispatchWorkers
	if len(users) < workers {
		workers = len(users)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for user := range tasks {
				results <- outcome{userID: user.ID, err: send(user)}
			}
		}()
	}

	for _, user := range users {
		tasks <- user
	}
	close(tasks)
	wg.Wait()
	close(results)

	for res := range results {
		if res.err != nil {
			log.Printf("[scheduler] %s: user %s: %v", job, res.userID, res.err)
		}
	}
}

// dispatchCapped runs the common per-user sequence: cap check, phone
// resolution, text selection, send, record on success. selectMessage
// receives today's prior send count for rotation. A rejected send is
// logged and left unrecorded, so a later tick may retry within the cap.
func (s *SchedulerService) dispatchCapped(user models.User, category models.Category, now time.Time, selectMessage func(sendCount int) string) error {
	count, err := s.caps.CountToday(user.ID, category, now)
	if err != nil {
		return err
	}
	if count >= models.DailyCap(category) {
		return nil
	}

	phone, err := s.audience.SelfPhone(user.ID)
	if err != nil {
		return err
	}
	if phone == "" {
		return nil
	}

	message := selectMessage(count)
	if result := s.dispatch.Send(phone, message); !result.Success {
		log.Printf("[scheduler] %s: send failed for user %s: %s", category, user.ID, result.Error)
		return nil
	}

	recorded, err := s.caps.Record(user.ID, category, now)
	if err != nil {
		return err
	}
	if !recorded {
		log.Printf("[scheduler] %s: cap consumed concurrently for user %s", category, user.ID)
	}
	return nil
}

// runDailyMotivation sends the morning message when the wall clock hits
// the user's configured time (default 08:00).
func (s *SchedulerService) runDailyMotivation(now time.Time) error {
	if now.Minute() != 0 {
		return nil
	}
	users, err := s.eligibleMainUsers("show_rest")
	if err != nil {
		return err
	}

	clock := now.Format("15:04")
	s.forEachUser("daily_motivation", users, func(user models.User) error {
		if clock != user.MotivationTime() {
			return nil
		}
		message := s.motivationMessage(user, now)
		return s.dispatchCapped(user, models.CategoryDailyMotivation, now, func(int) string {
			return message
		})
	})
	return nil
}

// motivationMessage prefers the note from the user's most recent mood
// entry over the rotating day-of-year pool.
func (s *SchedulerService) motivationMessage(user models.User, now time.Time) string {
	base := utils.DailyMessage(now)

	var latest models.MoodEntry
	err := s.db.Where("user_id = ?", user.ID).Order("date DESC").First(&latest).Error
	if err == nil && latest.Message != "" {
		base = latest.Message
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[scheduler] daily_motivation: latest mood lookup failed for %s: %v", user.ID, err)
	}

	return fmt.Sprintf("Good morning, %s 🌅\n\n%s", user.DisplayName(), base)
}

// runWaterReminders fires on the hour between 09:00 and 21:00, spaced
// by each user's configured frequency from the window start.
func (s *SchedulerService) runWaterReminders(now time.Time) error {
	if now.Minute() != 0 {
		return nil
	}
	hour := now.Hour()
	if hour < waterWindowStart || hour > waterWindowEnd {
		return nil
	}

	users, err := s.eligibleMainUsers("show_water")
	if err != nil {
		return err
	}

	s.forEachUser("water", users, func(user models.User) error {
		if (hour-waterWindowStart)%user.WaterFrequency() != 0 {
			return nil
		}
		return s.dispatchCapped(user, models.CategoryWater, now, func(int) string {
			return utils.WaterReminderMessage(user.DisplayName())
		})
	})
	return nil
}

// runSkincareReminders fires at the configured morning time and at its
// derived evening slot. AM and PM are capped independently.
func (s *SchedulerService) runSkincareReminders(now time.Time) error {
	if now.Minute() != 0 {
		return nil
	}
	users, err := s.eligibleMainUsers("show_skincare")
	if err != nil {
		return err
	}

	clock := now.Format("15:04")
	s.forEachUser("skincare", users, func(user models.User) error {
		morning := user.SkincareTime()
		hour, minute, ok := utils.ParseClock(morning)
		if !ok {
			return fmt.Errorf("invalid skincare time %q", morning)
		}
		evening := fmt.Sprintf("%02d:%02d", (hour+skincareEveningOffset)%24, minute)

		switch clock {
		case morning:
			return s.dispatchCapped(user, models.CategorySkincareAM, now, func(int) string {
				return utils.SkincareReminderMessage(true, user.DisplayName())
			})
		case evening:
			return s.dispatchCapped(user, models.CategorySkincarePM, now, func(int) string {
				return utils.SkincareReminderMessage(false, user.DisplayName())
			})
		}
		return nil
	})
	return nil
}

// runPeriodCareReminders fires at 09:00, 13:00, 17:00 and 21:00 for the
// first six days (inclusive) from the recorded period start.
func (s *SchedulerService) runPeriodCareReminders(now time.Time) error {
	if now.Minute() != 0 || !periodCareHours[now.Hour()] {
		return nil
	}

	users, err := s.eligibleMainUsers("show_period")
	if err != nil {
		return err
	}

	s.forEachUser("period_care", users, func(user models.User) error {
		if user.PeriodStartDate == nil || !user.PeriodRemindersOn() {
			return nil
		}
		days := utils.DaysBetween(*user.PeriodStartDate, now)
		if days < 0 || days > periodCareWindowDays {
			return nil
		}
		return s.dispatchCapped(user, models.CategoryPeriod, now, func(sendCount int) string {
			return utils.PeriodCareMessage(user.DisplayName(), sendCount)
		})
	})
	return nil
}

// runEmotionalCheckins follows up on the user's current need at the
// configured hour and two and four hours after it, unless the user has
// already logged a mood today.
func (s *SchedulerService) runEmotionalCheckins(now time.Time) error {
	if now.Minute() != 0 {
		return nil
	}

	users, err := s.eligibleMainUsers("")
	if err != nil {
		return err
	}

	hour := now.Hour()
	s.forEachUser("emotional_checkin", users, func(user models.User) error {
		if !user.CheckinOn() || !user.CurrentNeed.NeedsCheckin() {
			return nil
		}

		base, _, ok := utils.ParseClock(user.CheckinTime())
		if !ok {
			return fmt.Errorf("invalid check-in time %q", user.CheckinTime())
		}
		if hour != base && hour != (base+2)%24 && hour != (base+4)%24 {
			return nil
		}

		logged, err := s.hasMoodEntryToday(user.ID, now)
		if err != nil {
			return err
		}
		if logged {
			return nil
		}

		return s.dispatchCapped(user, models.CategoryEmotionalCheckin, now, func(sendCount int) string {
			return utils.EmotionalCheckinMessage(user.CurrentNeed, user.DisplayName(), sendCount)
		})
	})
	return nil
}

func (s *SchedulerService) hasMoodEntryToday(userID uuid.UUID, now time.Time) (bool, error) {
	start := utils.BeginningOfDay(now)
	var count int64
	err := s.db.Model(&models.MoodEntry{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count > 0, err
}
