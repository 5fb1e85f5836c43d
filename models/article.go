package models

import (
	"time"
)

// Article categories, fixed set.
const (
	CategoryGeneral    = "general"
	CategoryBooking    = "booking"
	CategoryAmenities  = "amenities"
	CategoryPolicies   = "policies"
	CategoryLocation   = "location"
	CategoryActivities = "activities"
)

var articleCategories = map[string]bool{
	CategoryGeneral:    true,
	CategoryBooking:    true,
	CategoryAmenities:  true,
	CategoryPolicies:   true,
	CategoryLocation:   true,
	CategoryActivities: true,
}

// ValidCategory reports whether c is one of the known article categories.
func ValidCategory(c string) bool {
	return articleCategories[c]
}

// Article is a knowledge-base entry. Content is raw markdown; rendering is
// the client's concern. Unpublished articles are invisible to guests.
type Article struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Category  string    `gorm:"size:32;index" json:"category"`
	Published bool      `json:"published"`
	ImageURL  *string   `gorm:"size:512;column:image_url" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
