package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleHotel     UserRole = "Hotel"
	RoleOrphanage UserRole = "Orphanage"
	RoleAdmin     UserRole = "Admin"
)

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"not null"`
	Role             UserRole  `json:"role" gorm:"not null"`
	Phone            string    `json:"phone" gorm:"not null"`
	Address          string    `json:"address"`
	OrganizationName string    `json:"organization_name"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
