package models

import "time"

// HolidayType distinguishes planned calendar holidays from emergency closures.
type HolidayType string

const (
	HolidayTypePlanned   HolidayType = "PLANNED"
	HolidayTypeEmergency HolidayType = "EMERGENCY"
)

// Holiday is a non-teaching date. Emergency holidays are written by the
// rescheduler before any relocation is attempted.
type Holiday struct {
	ID          string      `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Date        time.Time   `db:"date" json:"date"`
	Type        HolidayType `db:"type" json:"type"`
	Description string      `db:"description" json:"description"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// HolidayFilter narrows holiday listings.
type HolidayFilter struct {
	From *time.Time
	To   *time.Time
	Type HolidayType
}
