package timetable

import (
	"time"

	"github.com/campuskit/timetable-api/internal/models"
)

// Candidate describes a prospective placement tested against persisted entries.
type Candidate struct {
	Day         Day
	StartTime   time.Time
	EndTime     time.Time
	FacultyID   string
	ClassroomID string
}

// HasConflict reports whether the candidate overlaps any existing entry that
// shares its faculty or classroom on a day within scopeDays. Intervals are
// half-open: [start, end).
func HasConflict(candidate Candidate, existing []models.TimetableEntry, scopeDays []Day) bool {
	scope := make(map[Day]bool, len(scopeDays))
	for _, day := range scopeDays {
		scope[day] = true
	}

	candStart := minutesOfDay(candidate.StartTime)
	candEnd := minutesOfDay(candidate.EndTime)

	for _, entry := range existing {
		if !scope[Day(entry.DayOfWeek)] || Day(entry.DayOfWeek) != candidate.Day {
			continue
		}
		if entry.FacultyID != candidate.FacultyID && entry.ClassroomID != candidate.ClassroomID {
			continue
		}
		if candStart < minutesOfDay(entry.EndTime) && candEnd > minutesOfDay(entry.StartTime) {
			return true
		}
	}
	return false
}

// minutesOfDay normalises a wall-clock time so entries persisted with
// differing reference dates still compare on the clock face.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
