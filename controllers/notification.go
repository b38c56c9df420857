package controllers

import (
	"net/http"

	"companion-backend/services"
	"companion-backend/utils"

	"github.com/gin-gonic/gin"
)

// NotificationController exposes the operational probes for the
// outbound WhatsApp channel.
type NotificationController struct {
	WhatsApp *services.WhatsAppService
}

type SendTestInput struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message"`
}

// WhatsAppStatus is a public probe: is the Twilio channel configured?
func (ctl *NotificationController) WhatsAppStatus(c *gin.Context) {
	configured, message := ctl.WhatsApp.Status()
	c.JSON(http.StatusOK, gin.H{"configured": configured, "message": message})
}

// SendTest fires one message at the given phone so a main user can
// verify their Twilio sandbox setup end to end.
func (ctl *NotificationController) SendTest(c *gin.Context) {
	var input SendTestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number is required")
		return
	}

	message := input.Message
	if message == "" {
		message = "🧪 Test notification from Emotional Companion!"
	}

	result := ctl.WhatsApp.Send(input.Phone, message)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": result.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sid": result.Sid})
}
