package services

import (
	"testing"

	"companion-backend/models"
	"companion-backend/utils"
)

func TestNotifyReachesLinkedPartner(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeDispatcher{}
	notifier := NewPartnerNotifier(NewAudienceResolver(db), fake)

	main := createMainUser(t, db, nil)
	partnerPhone := "+14155551234"
	createMainUser(t, db, func(u *models.User) {
		u.Role = models.RolePartner
		u.Phone = &partnerPhone
		u.PartnerID = &main.ID
	})

	notifier.Notify(main.ID, utils.EventMood, main.Name)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.sent) != 1 {
		t.Fatalf("expected one partner message, got %d", len(fake.sent))
	}
	if fake.sent[0].To != partnerPhone {
		t.Fatalf("sent to %q, want %q", fake.sent[0].To, partnerPhone)
	}
	if want := utils.PartnerEventMessage(utils.EventMood, main.Name); fake.sent[0].Message != want {
		t.Fatalf("message = %q, want %q", fake.sent[0].Message, want)
	}
}

func TestNotifyWithoutPartnerSendsNothing(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeDispatcher{}
	notifier := NewPartnerNotifier(NewAudienceResolver(db), fake)

	main := createMainUser(t, db, nil)
	notifier.Notify(main.ID, utils.EventLetter, main.Name)

	if got := fake.count(); got != 0 {
		t.Fatalf("unlinked user triggered %d sends", got)
	}
}
