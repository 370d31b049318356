package model

import (
	"regexp"
	"time"
)

// Label is a colored tag that todos reference by id.
type Label struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Color     string    `gorm:"not null" json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidColor reports whether s is a six-digit hex color like "#3b82f6".
func ValidColor(s string) bool {
	return colorPattern.MatchString(s)
}
