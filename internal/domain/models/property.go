package models

import "time"

// Property represents a managed building. TimeZone is the IANA zone used when
// computing maintenance due dates for the building.
type Property struct {
	ID       string `json:"id" gorm:"primaryKey;size:36"`
	Name     string `json:"name" gorm:"size:255;index"`
	Address  string `json:"address" gorm:"size:512"`
	City     string `json:"city" gorm:"size:128"`
	TimeZone string `json:"time_zone" gorm:"size:64"`

	Spaces []Space `json:"spaces,omitempty" gorm:"foreignKey:PropertyID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Space represents a leasable or common unit within a property.
type Space struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	PropertyID string `json:"property_id" gorm:"size:36;index"`
	Name       string `json:"name" gorm:"size:128"`
	Floor      string `json:"floor" gorm:"size:32"`
}

// Occupier represents a tenant contact that reports maintenance issues.
type Occupier struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	Name       string `json:"name" gorm:"size:255;index"`
	Email      string `json:"email" gorm:"size:255"`
	PropertyID string `json:"property_id" gorm:"size:36;index"`
}
