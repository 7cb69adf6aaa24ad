package models

import (
	"strings"
	"time"
)

// Category is a menu section. Name is the normalized unique key derived from
// DisplayName; menu items reference it by free text, not by foreign key.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	DisplayName string    `json:"displayName" gorm:"not null"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order" gorm:"column:sort_order;default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NormalizeCategoryName uppercases a display name and collapses whitespace
// runs into single underscores: "fast  food" → "FAST_FOOD".
func NormalizeCategoryName(displayName string) string {
	return strings.ToUpper(strings.Join(strings.Fields(displayName), "_"))
}
