package utils

import "testing"

func TestNormalizePhoneForWhatsApp(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"international with spaces", "+91 72080 42263", "whatsapp:+917208042263"},
		{"already prefixed", "whatsapp:+14155551234", "whatsapp:+14155551234"},
		{"prefix case insensitive", "WhatsApp:+14155551234", "whatsapp:+14155551234"},
		{"dashes and brackets", "+1 (415) 555-1234", "whatsapp:+14155551234"},
		{"digits with country code", "917208042263", "whatsapp:+917208042263"},
		{"empty stays empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePhoneForWhatsApp(tc.in); got != tc.want {
				t.Fatalf("NormalizePhoneForWhatsApp(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizePhoneDefaultCountryCode(t *testing.T) {
	t.Setenv("DEFAULT_PHONE_COUNTRY_CODE", "")
	if got := NormalizePhoneForWhatsApp("7208042263"); got != "whatsapp:+917208042263" {
		t.Fatalf("ten-digit number should get the default country code, got %q", got)
	}
}

func TestNormalizePhoneCountryCodeOverride(t *testing.T) {
	t.Setenv("DEFAULT_PHONE_COUNTRY_CODE", "1")
	if got := NormalizePhoneForWhatsApp("4155551234"); got != "whatsapp:+14155551234" {
		t.Fatalf("country code override not applied, got %q", got)
	}
}
