package controllers

import (
	"errors"
	"net/http"
	"time"

	"companion-backend/config"
	"companion-backend/models"
	"companion-backend/services"
	"companion-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MoodController struct {
	Notifier *services.PartnerNotifier
}

type LogMoodInput struct {
	Mood   string `json:"mood" binding:"required"`
	Shared *bool  `json:"shared"`
}

// LogMood upserts today's mood entry for the main user. The entry is
// stamped with the day's motivational message so the morning reminder
// can echo it back. A shared entry triggers a partner "mood" event.
func (ctl *MoodController) LogMood(c *gin.Context) {
	userID, _ := c.Get("userId")

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var input LogMoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)
	isShared := (input.Shared == nil || *input.Shared) && user.GlobalSharing

	var entry models.MoodEntry
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", user.ID, today, today.AddDate(0, 0, 1)).
		First(&entry).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.MoodEntry{
			UserID:  user.ID,
			Date:    today,
			Mood:    input.Mood,
			Message: utils.DailyMessage(now),
			Shared:  isShared,
		}
		err = config.DB.Create(&entry).Error
	case err == nil:
		entry.Mood = input.Mood
		entry.Shared = isShared
		entry.Message = utils.DailyMessage(now)
		err = config.DB.Save(&entry).Error
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to log mood")
		return
	}

	if isShared {
		go ctl.Notifier.Notify(user.ID, utils.EventMood, user.Name)
	}

	c.JSON(http.StatusOK, gin.H{"mood": entry})
}

// TodayMood returns today's entry; partners see their main user's entry.
func (ctl *MoodController) TodayMood(c *gin.Context) {
	user, ok := ctl.resolveViewer(c)
	if !ok {
		return
	}

	ownerID, ok := ctl.moodOwner(c, user)
	if !ok {
		return
	}

	today := utils.BeginningOfDay(time.Now())
	var entry models.MoodEntry
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", ownerID, today, today.AddDate(0, 0, 1)).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"mood": nil})
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get today's mood")
		return
	}

	c.JSON(http.StatusOK, gin.H{"mood": entry})
}

// MoodHistory lists entries newest first; partners only see entries the
// main user shared.
func (ctl *MoodController) MoodHistory(c *gin.Context) {
	user, ok := ctl.resolveViewer(c)
	if !ok {
		return
	}

	ownerID, ok := ctl.moodOwner(c, user)
	if !ok {
		return
	}

	query := config.DB.Where("user_id = ?", ownerID)
	if user.Role == models.RolePartner {
		query = query.Where("shared = ?", true)
	}

	var entries []models.MoodEntry
	if err := query.Order("date DESC").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get mood history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"moods": entries})
}

func (ctl *MoodController) resolveViewer(c *gin.Context) (models.User, bool) {
	userID, _ := c.Get("userId")

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return models.User{}, false
	}
	return user, true
}

func (ctl *MoodController) moodOwner(c *gin.Context, user models.User) (uuid.UUID, bool) {
	if user.Role != models.RolePartner {
		return user.ID, true
	}
	if user.PartnerID == nil {
		utils.RespondWithError(c, http.StatusNotFound, "No linked main user")
		return uuid.Nil, false
	}
	return *user.PartnerID, true
}
