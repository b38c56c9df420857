package services

import (
	"strings"
	"testing"
)

func TestWhatsAppServiceUnconfigured(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_WHATSAPP_FROM", "")

	s := NewWhatsAppService()

	configured, message := s.Status()
	if configured {
		t.Fatal("empty credentials should leave the service unconfigured")
	}
	if message == "" {
		t.Fatal("status message should explain what is missing")
	}

	result := s.Send("+14155551234", "hello")
	if result.Success {
		t.Fatal("unconfigured service must not report success")
	}
}

func TestWhatsAppServiceRejectsPlaceholders(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "your_account_sid_here")
	t.Setenv("TWILIO_AUTH_TOKEN", "your_auth_token_here")
	t.Setenv("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886")

	s := NewWhatsAppService()
	if configured, _ := s.Status(); configured {
		t.Fatal("placeholder credentials should be treated as missing")
	}
}

func TestWhatsAppServiceStripsFromComment(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886  # sandbox number")

	s := NewWhatsAppService()
	if s.from != "whatsapp:+14155238886" {
		t.Fatalf("inline comment not stripped: %q", s.from)
	}
}

func TestValidTwilioConfig(t *testing.T) {
	cases := []struct {
		name string
		sid  string
		tok  string
		from string
		want bool
	}{
		{"all valid", "AC0123456789abcdef", "secret", "whatsapp:+14155238886", true},
		{"sid missing AC prefix", "0123456789abcdef", "secret", "whatsapp:+14155238886", false},
		{"placeholder sid", "ACyour_account_sid", "secret", "whatsapp:+14155238886", false},
		{"placeholder token", "AC0123456789abcdef", "your_auth_token", "whatsapp:+14155238886", false},
		{"from without prefix", "AC0123456789abcdef", "secret", "+14155238886", false},
		{"empty token", "AC0123456789abcdef", "", "whatsapp:+14155238886", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validTwilioConfig(tc.sid, tc.tok, tc.from); got != tc.want {
				t.Fatalf("validTwilioConfig = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStatusPointsAtFromFirst(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC0123456789abcdef")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_WHATSAPP_FROM", "14155238886")

	s := NewWhatsAppService()
	configured, message := s.Status()
	if configured {
		t.Fatal("bad from address should leave the service unconfigured")
	}
	if !strings.Contains(message, "TWILIO_WHATSAPP_FROM") {
		t.Fatalf("status should point at the from address: %q", message)
	}
}
