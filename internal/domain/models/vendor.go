package models

import "time"

// Vendor represents a maintenance contractor registered for one trade.
type Vendor struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	Name   string `json:"name" gorm:"size:255"`
	Trade  string `json:"trade" gorm:"size:64;index"`
	Email  string `json:"email" gorm:"size:255"`
	Phone  string `json:"phone" gorm:"size:64"`
	Active bool   `json:"active" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
