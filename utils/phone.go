package utils

import (
	"os"
	"regexp"
	"strings"
)

var (
	whatsappPrefixRe = regexp.MustCompile(`(?i)^whatsapp:`)
	phoneJunkRe      = regexp.MustCompile(`[\s\-–—()\[\]{}]`)
	nonPhoneRuneRe   = regexp.MustCompile(`[^\d+]`)
)

// NormalizePhoneForWhatsApp converts a user-stored phone string such as
// "+91 72080 42263" into Twilio's WhatsApp address form
// "whatsapp:+917208042263".
//
// Spaces, dashes and brackets are stripped; a bare 10-digit number gets
// DEFAULT_PHONE_COUNTRY_CODE (default "91") prepended; longer digit
// strings are assumed to already carry a country code.
func NormalizePhoneForWhatsApp(phone string) string {
	if phone == "" {
		return phone
	}

	cleaned := strings.TrimSpace(whatsappPrefixRe.ReplaceAllString(phone, ""))
	cleaned = phoneJunkRe.ReplaceAllString(cleaned, "")
	cleaned = nonPhoneRuneRe.ReplaceAllString(cleaned, "")

	if !strings.HasPrefix(cleaned, "+") {
		if len(cleaned) == 10 {
			code := os.Getenv("DEFAULT_PHONE_COUNTRY_CODE")
			if code == "" {
				code = "91"
			}
			cleaned = "+" + code + cleaned
		} else {
			cleaned = "+" + cleaned
		}
	}

	return "whatsapp:" + cleaned
}
