package models

import "time"

type Mechanic struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Maximum cars the mechanic takes on a single day.
	MaxActiveCars int `gorm:"not null" json:"max_active_cars"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
