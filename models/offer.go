package models

import "time"

// Offer is a promotional banner. Multiple offers may be active at once; the
// frontend shows the newest first.
type Offer struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	Image       string     `json:"image"`
	IsActive    bool       `json:"isActive"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
