package models

import (
	"time"
)

// Account roles. Email is unique within a role population, not globally,
// so an admin and a guest may share an address.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Account struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Email        string    `gorm:"size:150;uniqueIndex:idx_accounts_email_role" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Role         string    `gorm:"size:16;uniqueIndex:idx_accounts_email_role" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
