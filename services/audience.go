package services

import (
	"errors"

	"companion-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AudienceResolver answers which destination addresses receive a
// notification: SelfPhone for self-care reminders, PartnerPhones for
// relationship-event notifications. Self-care reminders never reach the
// partner.
type AudienceResolver struct {
	db *gorm.DB
}

func NewAudienceResolver(db *gorm.DB) *AudienceResolver {
	return &AudienceResolver{db: db}
}

// SelfPhone returns the user's own raw phone string, or "" when unset.
// Normalization is the dispatcher's job.
func (r *AudienceResolver) SelfPhone(userID uuid.UUID) (string, error) {
	var user models.User
	err := r.db.Select("phone").First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if user.Phone == nil {
		return "", nil
	}
	return *user.Phone, nil
}

// PartnerPhones returns the linked partner's phone. The link is
// first-match only (one partner per main user); a user with no linked
// partner resolves to an empty list, not an error.
func (r *AudienceResolver) PartnerPhones(mainUserID uuid.UUID) ([]string, error) {
	var partner models.User
	err := r.db.
		Where("partner_id = ? AND role = ?", mainUserID, models.RolePartner).
		Order("created_at").
		First(&partner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if partner.Phone == nil || *partner.Phone == "" {
		return nil, nil
	}
	return []string{*partner.Phone}, nil
}
