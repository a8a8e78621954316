package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/timetable-api/internal/models"
)

func TestRescheduleCancelAll(t *testing.T) {
	existing := []models.TimetableEntry{
		entryAt(Wednesday, 0, "f1", "c1"),
		entryAt(Wednesday, 1, "f2", "c1"),
		entryAt(Thursday, 0, "f1", "c1"),
	}

	result := Reschedule(Wednesday, ModeCancelAll, existing)

	assert.Empty(t, result.Relocated)
	require.Len(t, result.Cancelled, 2)
	for _, entry := range result.Cancelled {
		assert.Equal(t, int(Wednesday), entry.DayOfWeek)
	}
}

func TestRescheduleShiftSkipsOccupiedSlot(t *testing.T) {
	affected := entryAt(Tuesday, 0, "f1", "c1")
	affected.ID = "e1"
	affected.SubjectID = "s1"
	// Monday 9-10 is already held by f1 for a different subject.
	blocker := entryAt(Monday, 0, "f1", "c2")
	blocker.SubjectID = "s2"

	result := Reschedule(Tuesday, ModeShiftRemaining, []models.TimetableEntry{affected, blocker})

	require.Len(t, result.Relocated, 1)
	assert.Empty(t, result.Cancelled)

	moved := result.Relocated[0]
	assert.NotEqual(t, int(Tuesday), moved.DayOfWeek)
	// First free candidate after the blocked Monday 9-10 is Monday 10-11.
	assert.Equal(t, int(Monday), moved.DayOfWeek)
	assert.Equal(t, 10, moved.StartTime.Hour())
	assert.True(t, moved.IsRescheduled)
	require.NotNil(t, moved.OriginalEntryID)
	assert.Equal(t, "e1", *moved.OriginalEntryID)
	assert.Equal(t, "s1", moved.SubjectID)
}

func TestRescheduleDisplacedEntriesDoNotCollide(t *testing.T) {
	first := entryAt(Tuesday, 0, "f1", "c1")
	first.ID = "e1"
	second := entryAt(Tuesday, 1, "f1", "c1")
	second.ID = "e2"

	result := Reschedule(Tuesday, ModeShiftRemaining, []models.TimetableEntry{first, second})

	require.Len(t, result.Relocated, 2)
	a, b := result.Relocated[0], result.Relocated[1]
	if a.DayOfWeek == b.DayOfWeek {
		assert.NotEqual(t, a.StartTime.Hour(), b.StartTime.Hour(),
			"two displaced sessions for the same faculty share a cell")
	}
	// Input order grants first pick: e1 lands Monday 9-10, e2 Monday 10-11.
	assert.Equal(t, 9, a.StartTime.Hour())
	assert.Equal(t, 10, b.StartTime.Hour())
}

func TestReschedulePartitionComplete(t *testing.T) {
	existing := []models.TimetableEntry{
		entryAt(Friday, 0, "f1", "c1"),
		entryAt(Friday, 1, "f2", "c2"),
		entryAt(Friday, 2, "f3", "c3"),
		entryAt(Monday, 0, "f1", "c1"),
	}

	result := Reschedule(Friday, ModeShiftRemaining, existing)

	assert.Equal(t, 3, len(result.Relocated)+len(result.Cancelled))
}

func TestRescheduleFallsBackToCancelledWhenSaturated(t *testing.T) {
	// Fill every remaining (day, slot) cell for f1 so nothing can move.
	var existing []models.TimetableEntry
	for _, day := range []Day{Monday, Wednesday, Thursday, Friday} {
		for slot := range Slots {
			existing = append(existing, entryAt(day, slot, "f1", "c1"))
		}
	}
	affected := entryAt(Tuesday, 0, "f1", "c1")
	affected.ID = "stuck"
	existing = append(existing, affected)

	result := Reschedule(Tuesday, ModeShiftRemaining, existing)

	assert.Empty(t, result.Relocated)
	require.Len(t, result.Cancelled, 1)
	assert.Equal(t, "stuck", result.Cancelled[0].ID)
}

func TestRescheduleRelocationConflictFreedom(t *testing.T) {
	existing := []models.TimetableEntry{
		entryAt(Tuesday, 0, "f1", "c1"),
		entryAt(Tuesday, 3, "f2", "c2"),
		entryAt(Monday, 0, "f1", "c1"),
		entryAt(Wednesday, 0, "f2", "c2"),
	}

	result := Reschedule(Tuesday, ModeShiftRemaining, existing)

	var untouched []models.TimetableEntry
	for _, entry := range existing {
		if entry.DayOfWeek != int(Tuesday) {
			untouched = append(untouched, entry)
		}
	}
	final := append(untouched, result.Relocated...)

	for i, a := range final {
		assert.NotEqual(t, int(Tuesday), a.DayOfWeek)
		for _, b := range final[i+1:] {
			if a.DayOfWeek != b.DayOfWeek {
				continue
			}
			if a.FacultyID != b.FacultyID && a.ClassroomID != b.ClassroomID {
				continue
			}
			overlap := a.StartTime.Hour() < b.EndTime.Hour() && a.EndTime.Hour() > b.StartTime.Hour()
			assert.False(t, overlap)
		}
	}
}

func TestRescheduleModeValid(t *testing.T) {
	assert.True(t, ModeShiftRemaining.Valid())
	assert.True(t, ModeCancelAll.Valid())
	assert.False(t, RescheduleMode("DROP_TABLE").Valid())
}
