package utils

import (
	"fmt"
	"math/rand"
	"time"

	"companion-backend/models"
)

// MotivationalMessages rotates once per calendar day; 30 entries so a
// month of mornings feels fresh.
var MotivationalMessages = []string{
	"You are enough, just as you are 🌸",
	"Today is a lovely day to be gentle with yourself 💛",
	"Your dreams matter — even the quiet ones 🌙",
	"Take your time, darling. There's no rush here 🍃",
	"You're doing so much better than you think ✨",
	"Rest is not giving up — it's giving back to yourself 🌿",
	"Every small step counts, even standing still 💜",
	"You deserve all the softness today 🌷",
	"It's okay to not be okay. You're safe here 💕",
	"Breathe gently. You belong in this moment 🌊",
	"Your feelings are valid, every single one 🦋",
	"Be proud of how far you've come, love 🌈",
	"You carry more strength than you know 🌻",
	"Let today be gentle with you 🕊️",
	"The world is brighter with you in it 💗",
	"You are worthy of care, especially from yourself 🌺",
	"Small acts of self-love add up beautifully 🍀",
	"Your sensitivity is a gift, not a burden 💎",
	"Today, let's celebrate that you showed up 🎀",
	"Be the kindness you so freely give others 🤍",
	"You're allowed to take up space 🌙",
	"Healing looks different every day — and that's okay 🌱",
	"Some days just surviving is the win 🦅",
	"Your pace is perfect exactly as it is 🐚",
	"You don't have to have it all figured out 🌤️",
	"Rest, reset, and return softer 🕯️",
	"Feeling everything this deeply is a kind of courage 💜",
	"Every breath you take is an act of self-care 🌬️",
	"You are loved more than words can say 💓",
	"Today is yours — use it gently 🌷",
}

// DailyMessage returns the day's base motivational message. It is
// deterministic per calendar day (day-of-year indexed) so every
// computation within one day yields the same text, and the rotation
// wraps after len(MotivationalMessages) days.
func DailyMessage(now time.Time) string {
	return MotivationalMessages[now.YearDay()%len(MotivationalMessages)]
}

var waterMessages = []func(n string) string{
	func(n string) string { return "💧 Hey " + n + ", time to drink some water 🌸" },
	func(n string) string { return "💧 A little water break? You deserve it, " + n + " 🌿" },
	func(n string) string { return "💧 Hydration reminder with love, " + n + " 💧" },
	func(n string) string { return "💧 Your body is asking for a sip, sweetheart 💛" },
	func(n string) string { return "💧 Don't forget to hydrate, " + n + " — you matter 🌊" },
}

// WaterReminderMessage picks uniformly at random: hourly water nudges
// benefit from variety over reproducibility.
func WaterReminderMessage(name string) string {
	return waterMessages[rand.Intn(len(waterMessages))](name)
}

func SkincareReminderMessage(morning bool, name string) string {
	if morning {
		return "☀️ Morning skincare time, " + name + " — let's start the day beautifully 🌸"
	}
	return "🌙 Evening skincare time — let's take care of you, " + name + " 💛"
}

var periodMessages = []func(n string) string{
	func(n string) string { return "💗 Your cycle may be approaching, " + n + ". Take it easy today 🌸" },
	func(n string) string {
		return "🌺 Extra gentleness today — your body is doing something beautiful, " + n + " 💛"
	},
	func(n string) string { return "💗 Warm drink? Heating pad? You deserve comfort right now, " + n + " 🍀" },
	func(n string) string { return "🌸 Be soft with yourself today, " + n + ". Your body is working hard 💜" },
}

// PeriodCareMessage rotates through four variants by today's prior send
// count, so the four sends a day allows all read differently.
func PeriodCareMessage(name string, sendCount int) string {
	return periodMessages[sendCount%len(periodMessages)](name)
}

var (
	checkinRestMessages = []func(n string) string{
		func(n string) string { return "😴 How are you feeling now, " + n + "? You mentioned needing rest 💛" },
		func(n string) string {
			return "😴 Just checking in — are you getting the rest you need, " + n + "? 🌙"
		},
		func(n string) string { return "😴 Gentle nudge: have you rested at all today, " + n + "? 🤍" },
	}
	checkinMotivationMessages = []func(n string) string{
		func(n string) string {
			return "✨ Checking in — do you need a little motivation today, " + n + "? 🌸"
		},
		func(n string) string { return "✨ You've got this, " + n + " — want to log how you're feeling? 💜" },
		func(n string) string { return "✨ A small reminder that you're doing great, " + n + " 🌈" },
	}
	checkinSupportMessages = []func(n string) string{
		func(n string) string { return "💗 How are you doing, " + n + "? I'm here if you need support 🤍" },
		func(n string) string { return "💗 Thinking of you, " + n + " — how's your heart today? 🌺" },
		func(n string) string { return "💗 You don't have to carry everything alone, " + n + " 💛" },
	}
	checkinSpaceMessages = []func(n string) string{
		func(n string) string { return "🌊 Sending you space and peace, " + n + " 🕊️" },
		func(n string) string { return "🌊 Just a gentle presence — no pressure, " + n + " 🍃" },
		func(n string) string { return "🌊 The world can wait. How are you, " + n + "? 💙" },
	}
)

// EmotionalCheckinMessage rotates three variants per need by today's
// prior send count. Needs without a pool get a generic check-in.
func EmotionalCheckinMessage(need models.Need, name string, sendCount int) string {
	var variants []func(n string) string
	switch need {
	case models.NeedRest:
		variants = checkinRestMessages
	case models.NeedMotivation:
		variants = checkinMotivationMessages
	case models.NeedSupport:
		variants = checkinSupportMessages
	case models.NeedSpace:
		variants = checkinSpaceMessages
	default:
		return "💛 Just checking in with you, " + name + " 🌸"
	}
	return variants[sendCount%len(variants)](name)
}

// PartnerEvent is the closed set of relationship events that notify the
// linked partner.
type PartnerEvent int

const (
	EventMood PartnerEvent = iota
	EventDream
	EventThought
	EventLetter
	EventSelfCare
	EventNeed
)

func PartnerEventMessage(event PartnerEvent, name string) string {
	n := name
	if n == "" {
		n = "Your partner"
	}
	switch event {
	case EventMood:
		return fmt.Sprintf("💛 %s logged her mood today.", n)
	case EventDream:
		return fmt.Sprintf("🌙 %s shared a dream with you.", n)
	case EventThought:
		return fmt.Sprintf("💭 %s shared a thought with you.", n)
	case EventLetter:
		return fmt.Sprintf("💌 You received a letter from %s.", n)
	case EventSelfCare:
		return fmt.Sprintf("🌿 %s completed a self-care step.", n)
	case EventNeed:
		return fmt.Sprintf("❤️ %s updated what she needs right now.", n)
	}
	return ""
}
