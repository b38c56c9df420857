package services

import (
	"log"

	"companion-backend/utils"

	"github.com/google/uuid"
)

// PartnerNotifier sends fire-and-forget relationship-event messages
// (mood/dream/thought/letter/self-care/need) to the linked partner.
// Errors are logged and never returned: callers are request handlers
// that must not fail because a nudge did not go out.
type PartnerNotifier struct {
	audience *AudienceResolver
	dispatch Dispatcher
}

func NewPartnerNotifier(audience *AudienceResolver, dispatch Dispatcher) *PartnerNotifier {
	return &PartnerNotifier{audience: audience, dispatch: dispatch}
}

// Notify looks up the partner phone for mainUserID and sends the event
// message. No linked partner means nothing to do.
func (n *PartnerNotifier) Notify(mainUserID uuid.UUID, event utils.PartnerEvent, name string) {
	phones, err := n.audience.PartnerPhones(mainUserID)
	if err != nil {
		log.Printf("[notify-partner] phone lookup failed for %s: %v", mainUserID, err)
		return
	}

	message := utils.PartnerEventMessage(event, name)
	for _, phone := range phones {
		if result := n.dispatch.Send(phone, message); !result.Success {
			log.Printf("[notify-partner] send failed to %s: %s", phone, result.Error)
		}
	}
}
