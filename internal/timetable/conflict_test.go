package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuskit/timetable-api/internal/models"
)

func entryAt(day Day, slotIndex int, facultyID, classroomID string) models.TimetableEntry {
	start, end := Slots[slotIndex].Window()
	return models.TimetableEntry{
		ID:          "e-" + facultyID + "-" + classroomID,
		FacultyID:   facultyID,
		ClassroomID: classroomID,
		DayOfWeek:   int(day),
		StartTime:   start,
		EndTime:     end,
	}
}

func candidateAt(day Day, slotIndex int, facultyID, classroomID string) Candidate {
	start, end := Slots[slotIndex].Window()
	return Candidate{
		Day:         day,
		StartTime:   start,
		EndTime:     end,
		FacultyID:   facultyID,
		ClassroomID: classroomID,
	}
}

func TestHasConflictReflexive(t *testing.T) {
	entry := entryAt(Monday, 0, "f1", "c1")
	candidate := candidateAt(Monday, 0, "f1", "c1")

	assert.True(t, HasConflict(candidate, []models.TimetableEntry{entry}, Weekdays))
}

func TestHasConflictEmptyExisting(t *testing.T) {
	candidate := candidateAt(Monday, 0, "f1", "c1")

	assert.False(t, HasConflict(candidate, nil, Weekdays))
}

func TestHasConflictSharedFaculty(t *testing.T) {
	existing := []models.TimetableEntry{entryAt(Tuesday, 2, "f1", "c9")}
	candidate := candidateAt(Tuesday, 2, "f1", "c1")

	assert.True(t, HasConflict(candidate, existing, Weekdays))
}

func TestHasConflictSharedClassroom(t *testing.T) {
	existing := []models.TimetableEntry{entryAt(Tuesday, 2, "f9", "c1")}
	candidate := candidateAt(Tuesday, 2, "f1", "c1")

	assert.True(t, HasConflict(candidate, existing, Weekdays))
}

func TestHasConflictDifferentDay(t *testing.T) {
	existing := []models.TimetableEntry{entryAt(Monday, 0, "f1", "c1")}
	candidate := candidateAt(Tuesday, 0, "f1", "c1")

	assert.False(t, HasConflict(candidate, existing, Weekdays))
}

func TestHasConflictDisjointResources(t *testing.T) {
	existing := []models.TimetableEntry{entryAt(Monday, 0, "f2", "c2")}
	candidate := candidateAt(Monday, 0, "f1", "c1")

	assert.False(t, HasConflict(candidate, existing, Weekdays))
}

func TestHasConflictHalfOpenIntervals(t *testing.T) {
	// 9-10 and 10-11 share only the boundary instant; no overlap.
	existing := []models.TimetableEntry{entryAt(Monday, 0, "f1", "c1")}
	candidate := candidateAt(Monday, 1, "f1", "c1")

	assert.False(t, HasConflict(candidate, existing, Weekdays))
}

func TestHasConflictRespectsScopeDays(t *testing.T) {
	existing := []models.TimetableEntry{entryAt(Monday, 0, "f1", "c1")}
	candidate := candidateAt(Monday, 0, "f1", "c1")

	assert.False(t, HasConflict(candidate, existing, []Day{Tuesday, Wednesday}))
}
