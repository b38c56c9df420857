package controllers

import (
	"net/http"
	"time"

	"companion-backend/config"
	"companion-backend/models"
	"companion-backend/services"
	"companion-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Notifier *services.PartnerNotifier
}

type UpdateSettingsInput struct {
	Phone                   *string `json:"phone"`
	NotificationsEnabled    *bool   `json:"notificationsEnabled"`
	ShowWater               *bool   `json:"showWater"`
	ShowRest                *bool   `json:"showRest"`
	ShowSkincare            *bool   `json:"showSkincare"`
	ShowPeriod              *bool   `json:"showPeriod"`
	PeriodReminderEnabled   *bool   `json:"periodReminderEnabled"`
	EmotionalCheckinEnabled *bool   `json:"emotionalCheckinEnabled"`
	WaterReminderFrequency  *int    `json:"waterReminderFrequency" binding:"omitempty,min=1,max=12"`
	DailyMotivationTime     *string `json:"dailyMotivationTime"`
	SkincareReminderTime    *string `json:"skincareReminderTime"`
	EmotionalCheckinTime    *string `json:"emotionalCheckinTime"`
	PeriodStartDate         *string `json:"periodStartDate"` // "2006-01-02"
	CurrentNeed             *string `json:"currentNeed" binding:"omitempty,oneof=REST MOTIVATION SUPPORT SPACE SILENCE GENTLE_REMINDERS"`
	GlobalSharing           *bool   `json:"globalSharing"`
}

func (ctl *SettingsController) GetSettings(c *gin.Context) {
	userID, _ := c.Get("userId")

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": user})
}

// UpdateSettings applies only the fields present in the request body.
// A currentNeed change triggers a partner "need" event.
func (ctl *SettingsController) UpdateSettings(c *gin.Context) {
	userID, _ := c.Get("userId")

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		user.Phone = input.Phone
	}
	if input.NotificationsEnabled != nil {
		user.NotificationsEnabled = input.NotificationsEnabled
	}
	if input.ShowWater != nil {
		user.ShowWater = input.ShowWater
	}
	if input.ShowRest != nil {
		user.ShowRest = input.ShowRest
	}
	if input.ShowSkincare != nil {
		user.ShowSkincare = input.ShowSkincare
	}
	if input.ShowPeriod != nil {
		user.ShowPeriod = input.ShowPeriod
	}
	if input.PeriodReminderEnabled != nil {
		user.PeriodReminderEnabled = input.PeriodReminderEnabled
	}
	if input.EmotionalCheckinEnabled != nil {
		user.EmotionalCheckinEnabled = input.EmotionalCheckinEnabled
	}
	if input.WaterReminderFrequency != nil {
		user.WaterReminderFrequency = input.WaterReminderFrequency
	}

	for _, clock := range []struct {
		value *string
		field *string
	}{
		{input.DailyMotivationTime, &user.DailyMotivationTime},
		{input.SkincareReminderTime, &user.SkincareReminderTime},
		{input.EmotionalCheckinTime, &user.EmotionalCheckinTime},
	} {
		if clock.value == nil {
			continue
		}
		if _, _, ok := utils.ParseClock(*clock.value); !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Reminder times must be in HH:MM format")
			return
		}
		*clock.field = *clock.value
	}

	if input.PeriodStartDate != nil {
		if *input.PeriodStartDate == "" {
			user.PeriodStartDate = nil
		} else {
			parsed, err := time.ParseInLocation("2006-01-02", *input.PeriodStartDate, time.Local)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "periodStartDate must be in YYYY-MM-DD format")
				return
			}
			user.PeriodStartDate = &parsed
		}
	}

	needChanged := false
	if input.CurrentNeed != nil && models.Need(*input.CurrentNeed) != user.CurrentNeed {
		user.CurrentNeed = models.Need(*input.CurrentNeed)
		needChanged = true
	}
	if input.GlobalSharing != nil {
		user.GlobalSharing = *input.GlobalSharing
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	if needChanged && user.Role == models.RoleMainUser {
		go ctl.Notifier.Notify(user.ID, utils.EventNeed, user.Name)
	}

	c.JSON(http.StatusOK, gin.H{"settings": user})
}
