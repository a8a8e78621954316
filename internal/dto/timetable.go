package dto

import (
	"time"

	"github.com/campuskit/timetable-api/internal/models"
	"github.com/campuskit/timetable-api/internal/timetable"
)

// ConstraintsRequest carries optional generator tuning. Zero values fall back
// to the configured defaults.
type ConstraintsRequest struct {
	MaxDailyHours    int   `json:"maxDailyHours" validate:"omitempty,min=1,max=24"`
	MaxWeeklyHours   int   `json:"maxWeeklyHours" validate:"omitempty,min=1,max=120"`
	MinGapMinutes    int   `json:"minGapBetweenClasses" validate:"omitempty,min=0"`
	PreferredSlots   []int `json:"preferredTimeSlots" validate:"omitempty,dive,min=0,max=6"`
	LabHoursRequired *bool `json:"labHoursRequired"`
}

// GenerateTimetableRequest scopes and triggers full weekly generation.
type GenerateTimetableRequest struct {
	DepartmentID string              `json:"departmentId"`
	Semester     int                 `json:"semester" validate:"omitempty,min=1,max=12"`
	Constraints  *ConstraintsRequest `json:"constraints"`
}

// GenerateTimetableResponse returns the persisted week plus placement warnings.
type GenerateTimetableResponse struct {
	Entries  []models.TimetableEntry `json:"entries"`
	Warnings []timetable.Warning     `json:"warnings"`
}

// RescheduleRequest triggers emergency rescheduling for a disrupted date.
type RescheduleRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"required"`
	Mode   string `json:"mode" validate:"required,oneof=SHIFT_REMAINING CANCEL_ALL"`
}

// RescheduleResponse reports the full partition of affected entries so the
// caller can notify faculty about both outcomes.
type RescheduleResponse struct {
	HolidayID string                  `json:"holidayId"`
	Relocated []models.TimetableEntry `json:"relocated"`
	Cancelled []models.TimetableEntry `json:"cancelled"`
}

// TimetableQuery filters timetable listings.
type TimetableQuery struct {
	FacultyID string `form:"facultyId" json:"facultyId"`
	DayOfWeek int    `form:"day" json:"day" validate:"omitempty,min=1,max=5"`
}

// CreateHolidayRequest registers a planned holiday.
type CreateHolidayRequest struct {
	Name        string `json:"name" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Type        string `json:"type" validate:"omitempty,oneof=PLANNED EMERGENCY"`
	Description string `json:"description"`
}

// HolidayQuery filters holiday listings.
type HolidayQuery struct {
	From string `form:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
	Type string `form:"type" json:"type" validate:"omitempty,oneof=PLANNED EMERGENCY"`
}

// FacultyNotification summarises reschedule outcomes for one faculty member.
type FacultyNotification struct {
	FacultyID string               `json:"facultyId"`
	Date      time.Time            `json:"date"`
	Reason    string               `json:"reason"`
	Mode      string               `json:"mode"`
	Sessions  []NotificationDetail `json:"sessions"`
}

// NotificationDetail describes a single affected session.
type NotificationDetail struct {
	SubjectID   string     `json:"subjectId"`
	ClassroomID string     `json:"classroomId"`
	Outcome     string     `json:"outcome"` // RELOCATED or CANCELLED
	NewDay      int        `json:"newDay,omitempty"`
	NewStart    *time.Time `json:"newStart,omitempty"`
	NewEnd      *time.Time `json:"newEnd,omitempty"`
}
