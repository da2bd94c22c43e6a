package matching

import (
	"errors"
	"testing"

	"food-donation-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestResolveRecipient(t *testing.T) {
	db := openTestDB(t)
	db.Create(&models.User{
		Name: "Sunrise Home", Email: "home@example.com", PasswordHash: "x",
		Role: models.RoleOrphanage, Phone: "9998887770", Address: "12 Hill Rd",
		OrganizationName: "Sunrise Trust",
	})
	db.Create(&models.User{
		Name: "Grand Hotel", Email: "hotel@example.com", PasswordHash: "x",
		Role: models.RoleHotel, Phone: "1112223330", Address: "1 Main St",
	})

	got, err := ResolveRecipient(db, "9998887770")
	if err != nil {
		t.Fatalf("expected match, got error: %v", err)
	}
	if got.Name != "Sunrise Home" || got.Role != models.RoleOrphanage {
		t.Errorf("resolved wrong account: %+v", got)
	}
}

func TestResolveRecipientUnknownPhone(t *testing.T) {
	db := openTestDB(t)
	if _, err := ResolveRecipient(db, "0000000000"); !errors.Is(err, ErrNoRecipient) {
		t.Errorf("expected ErrNoRecipient, got %v", err)
	}
}

func TestResolveRecipientIgnoresOtherRoles(t *testing.T) {
	db := openTestDB(t)
	db.Create(&models.User{
		Name: "Grand Hotel", Email: "hotel@example.com", PasswordHash: "x",
		Role: models.RoleHotel, Phone: "9998887770", Address: "1 Main St",
	})
	if _, err := ResolveRecipient(db, "9998887770"); !errors.Is(err, ErrNoRecipient) {
		t.Errorf("a Hotel account must not satisfy the matching rule, got %v", err)
	}
}
