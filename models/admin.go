package models

import (
	"time"
)

// Admin is the single back-office account. Created by seeding, mutated only
// on password reset.
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	DOB          string    `json:"-" gorm:"not null"` // YYYY-MM-DD, used for password recovery
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
