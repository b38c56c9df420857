// services/whatsapp.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"companion-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SendResult is the outcome the dispatch channel reports for one message.
type SendResult struct {
	Success bool
	Sid     string
	Error   string
}

// Dispatcher is the outbound message channel. Callers treat it as
// fire-and-forget: a failed send is logged by the caller and never
// retried within the same call.
type Dispatcher interface {
	Send(to, message string) SendResult
}

// WhatsAppService sends messages through Twilio's WhatsApp API.
// With missing or placeholder credentials it stays unconfigured and
// reports every send as a failure instead of hitting the API.
type WhatsAppService struct {
	client *twilio.RestClient
	from   string
}

func NewWhatsAppService() *WhatsAppService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_WHATSAPP_FROM")

	// Strip inline comments (e.g. "whatsapp:+14155238886  # sandbox")
	if i := strings.Index(from, "#"); i >= 0 {
		from = from[:i]
	}
	from = strings.TrimSpace(from)

	s := &WhatsAppService{from: from}
	if validTwilioConfig(accountSid, authToken, from) {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
		// A hung provider call must stall only its own worker, never a tick.
		s.client.SetTimeout(10 * time.Second)
	} else {
		log.Println("Twilio credentials not configured. WhatsApp notifications will be disabled.")
	}
	return s
}

// Real Twilio Account SIDs start with "AC"; "your_..." placeholders from
// an unedited .env are treated as missing.
func validTwilioConfig(accountSid, authToken, from string) bool {
	return accountSid != "" && authToken != "" && from != "" &&
		!strings.Contains(accountSid, "your_") &&
		!strings.Contains(authToken, "your_") &&
		strings.HasPrefix(accountSid, "AC") &&
		strings.HasPrefix(from, "whatsapp:+")
}

// Status reports whether dispatch is usable, for the public probe route
// and the startup log line.
func (s *WhatsAppService) Status() (configured bool, message string) {
	if s.client != nil {
		return true, "WhatsApp notifications are enabled."
	}
	if s.from == "" || !strings.HasPrefix(s.from, "whatsapp:+") {
		return false, "Set TWILIO_WHATSAPP_FROM=whatsapp:+14155238886 (no spaces or comments)."
	}
	return false, "Set TWILIO_ACCOUNT_SID (starts with AC) and TWILIO_AUTH_TOKEN."
}

func (s *WhatsAppService) Send(to, message string) SendResult {
	if s.client == nil {
		log.Printf("[whatsapp] mock send (not configured) to=%s message=%q", to, message)
		return SendResult{Success: false, Error: "Twilio credentials not configured"}
	}

	formattedTo := utils.NormalizePhoneForWhatsApp(to)

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(formattedTo)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("[whatsapp] send failed to %s: %v", formattedTo, err)
		return SendResult{Success: false, Error: err.Error()}
	}

	result := SendResult{Success: true}
	if resp.Sid != nil {
		result.Sid = *resp.Sid
		log.Printf("[whatsapp] sent to %s, SID: %s", formattedTo, *resp.Sid)
	} else {
		log.Printf("[whatsapp] sent to %s, but no SID returned", formattedTo)
	}
	return result
}
