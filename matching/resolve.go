// Package matching holds the one cross-store rule: resolving a donation's
// recipient phone number to an Orphanage account at submission time.
package matching

import (
	"errors"

	"food-donation-api/models"

	"gorm.io/gorm"
)

// ErrNoRecipient means the phone does not belong to any Orphanage account.
var ErrNoRecipient = errors.New("no orphanage found with that phone number")

// ResolveRecipient is a read-only lookup against the identity store. It is
// called exactly once, when a donation is created; the result is not
// re-validated afterward.
func ResolveRecipient(usersDB *gorm.DB, phone string) (*models.User, error) {
	var orphanage models.User
	err := usersDB.
		Where("phone = ? AND role = ?", phone, models.RoleOrphanage).
		First(&orphanage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRecipient
	}
	if err != nil {
		return nil, err
	}
	return &orphanage, nil
}
