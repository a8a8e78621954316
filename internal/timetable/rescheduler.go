package timetable

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/timetable-api/internal/models"
)

// RescheduleMode selects the emergency handling strategy.
type RescheduleMode string

const (
	ModeShiftRemaining RescheduleMode = "SHIFT_REMAINING"
	ModeCancelAll      RescheduleMode = "CANCEL_ALL"
)

// Valid reports whether the mode is one of the supported strategies.
func (m RescheduleMode) Valid() bool {
	return m == ModeShiftRemaining || m == ModeCancelAll
}

// RescheduleResult partitions the affected entries. Every affected entry
// appears in exactly one of the two lists.
type RescheduleResult struct {
	// Relocated holds the newly created replacement entries, each linked to
	// its original via OriginalEntryID.
	Relocated []models.TimetableEntry
	// Cancelled holds the affected originals that could not be relocated.
	Cancelled []models.TimetableEntry
}

// Reschedule relocates every entry on the disrupted day into the remaining
// weekdays, or cancels them all when mode is CANCEL_ALL. Affected entries are
// processed in the input order of existing; earlier entries get first pick of
// scarce slots. Relocations created earlier in the run join the conflict pool
// so two displaced sessions for the same faculty cannot collide.
func Reschedule(disrupted Day, mode RescheduleMode, existing []models.TimetableEntry) RescheduleResult {
	var result RescheduleResult

	var affected []models.TimetableEntry
	for _, entry := range existing {
		if Day(entry.DayOfWeek) == disrupted {
			affected = append(affected, entry)
		}
	}

	if mode == ModeCancelAll {
		result.Cancelled = affected
		return result
	}

	remaining := make([]Day, 0, len(Weekdays)-1)
	for _, day := range Weekdays {
		if day != disrupted {
			remaining = append(remaining, day)
		}
	}

	pool := make([]models.TimetableEntry, 0, len(existing))
	for _, entry := range existing {
		if Day(entry.DayOfWeek) != disrupted {
			pool = append(pool, entry)
		}
	}

	now := time.Now().UTC()
	for _, entry := range affected {
		relocated, ok := relocate(entry, remaining, pool, now)
		if !ok {
			result.Cancelled = append(result.Cancelled, entry)
			continue
		}
		result.Relocated = append(result.Relocated, relocated)
		pool = append(pool, relocated)
	}

	return result
}

// relocate walks the remaining days and canonical slots in order and returns
// the first conflict-free placement for the entry.
func relocate(entry models.TimetableEntry, remaining []Day, pool []models.TimetableEntry, now time.Time) (models.TimetableEntry, bool) {
	for _, day := range remaining {
		for _, slot := range Slots {
			start, end := slot.Window()
			candidate := Candidate{
				Day:         day,
				StartTime:   start,
				EndTime:     end,
				FacultyID:   entry.FacultyID,
				ClassroomID: entry.ClassroomID,
			}
			if HasConflict(candidate, pool, remaining) {
				continue
			}

			originalID := entry.ID
			return models.TimetableEntry{
				ID:              uuid.NewString(),
				SubjectID:       entry.SubjectID,
				FacultyID:       entry.FacultyID,
				ClassroomID:     entry.ClassroomID,
				DayOfWeek:       int(day),
				StartTime:       start,
				EndTime:         end,
				ClassType:       entry.ClassType,
				IsRescheduled:   true,
				OriginalEntryID: &originalID,
				CreatedBy:       entry.CreatedBy,
				CreatedAt:       now,
				UpdatedAt:       now,
			}, true
		}
	}
	return models.TimetableEntry{}, false
}
