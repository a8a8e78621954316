package models

import "time"

// ClassType distinguishes lecture and lab sessions.
type ClassType string

const (
	ClassTypeLecture ClassType = "LECTURE"
	ClassTypeLab     ClassType = "LAB"
)

// TimetableEntry is one weekly class session placed on the (day, slot) grid.
// DayOfWeek uses 1 (Monday) through 5 (Friday). Start/end are wall-clock times
// on the canonical slot boundaries; the date component is not meaningful.
type TimetableEntry struct {
	ID              string    `db:"id" json:"id"`
	SubjectID       string    `db:"subject_id" json:"subject_id"`
	FacultyID       string    `db:"faculty_id" json:"faculty_id"`
	ClassroomID     string    `db:"classroom_id" json:"classroom_id"`
	DayOfWeek       int       `db:"day_of_week" json:"day_of_week"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	EndTime         time.Time `db:"end_time" json:"end_time"`
	ClassType       ClassType `db:"class_type" json:"class_type"`
	IsRescheduled   bool      `db:"is_rescheduled" json:"is_rescheduled"`
	OriginalEntryID *string   `db:"original_entry_id" json:"original_entry_id,omitempty"`
	CreatedBy       string    `db:"created_by" json:"created_by"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// TimetableFilter narrows timetable listings.
type TimetableFilter struct {
	FacultyID string
	DayOfWeek int
}
