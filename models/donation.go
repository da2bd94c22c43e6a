package models

import "time"

// DonationStatus represents all possible states of a food donation
type DonationStatus string

const (
	StatusPending  DonationStatus = "Pending"
	StatusAccepted DonationStatus = "Accepted"
	StatusRejected DonationStatus = "Rejected"
)

type Donation struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	FoodName     string `json:"food_name" gorm:"not null"`
	Quantity     string `json:"quantity" gorm:"not null"` // free text, never parsed
	DocumentPath string `json:"document_path" gorm:"not null"`
	DocumentID   string `json:"document_id" gorm:"uniqueIndex;not null"`
	// OrphanageID is resolved from the phone once at submission so later
	// contact-detail changes cannot orphan the record.
	OrphanageID    uint                    `json:"orphanage_id" gorm:"not null"`
	OrphanagePhone string                  `json:"orphanage_phone" gorm:"not null"`
	HotelID        uint                    `json:"hotel_id"`
	HotelAddress   string                  `json:"hotel_address" gorm:"not null"`
	DonationDate   string                  `json:"donation_date" gorm:"not null"` // YYYY-MM-DD
	Status         DonationStatus          `json:"status" gorm:"not null;default:'Pending'"`
	StatusHistory  []DonationStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:DonationID"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// DonationStatusHistory tracks every status change
type DonationStatusHistory struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	DonationID uint           `json:"donation_id" gorm:"not null"`
	FromStatus DonationStatus `json:"from_status"`
	ToStatus   DonationStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint           `json:"changed_by"` // user ID who triggered the transition
	Note       string         `json:"note"`
	CreatedAt  time.Time      `json:"created_at"`
}
