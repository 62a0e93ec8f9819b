package models

import "time"

// Appointment has no status column: it either exists or was deleted.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`

	// Phone doubles as the client identity key and never changes after
	// creation.
	ClientPhone string `gorm:"size:20;not null;index" json:"client_phone"`

	CarColor   string `gorm:"size:50" json:"car_color"`
	CarLicense string `gorm:"size:20" json:"car_license"`
	CarEngine  string `gorm:"size:50" json:"car_engine"`

	// Calendar date, stored at midnight UTC.
	AppointmentDate time.Time `gorm:"index" json:"appointment_date"`

	// MechanicID 0 means orphaned: under the orphan delete policy the
	// FK goes NULL when the mechanic is removed, and NULL scans back as
	// the zero value. Admission never admits mechanic id 0, so orphaned
	// rows can only be read or deleted.
	MechanicID uint     `gorm:"index" json:"mechanic_id"`
	Mechanic   Mechanic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"mechanic"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
