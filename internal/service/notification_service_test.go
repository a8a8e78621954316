package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/timetable-api/internal/models"
	"github.com/campuskit/timetable-api/internal/timetable"
)

func TestBuildFacultyNotificationsGroupsByFaculty(t *testing.T) {
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	s0, e0 := timetable.Slots[0].Window()

	result := timetable.RescheduleResult{
		Relocated: []models.TimetableEntry{
			{ID: "r1", SubjectID: "math", FacultyID: "fac-1", ClassroomID: "room-1", DayOfWeek: 2, StartTime: s0, EndTime: e0},
			{ID: "r2", SubjectID: "chem", FacultyID: "fac-2", ClassroomID: "room-2", DayOfWeek: 3, StartTime: s0, EndTime: e0},
		},
		Cancelled: []models.TimetableEntry{
			{ID: "c1", SubjectID: "phys", FacultyID: "fac-1", ClassroomID: "lab-1", DayOfWeek: 1},
		},
	}

	notifications := BuildFacultyNotifications(date, "flooding", timetable.ModeShiftRemaining, result)
	require.Len(t, notifications, 2)

	// Sorted by faculty ID.
	first := notifications[0]
	assert.Equal(t, "fac-1", first.FacultyID)
	assert.Equal(t, "flooding", first.Reason)
	assert.Equal(t, string(timetable.ModeShiftRemaining), first.Mode)
	require.Len(t, first.Sessions, 2)
	assert.Equal(t, "RELOCATED", first.Sessions[0].Outcome)
	assert.Equal(t, 2, first.Sessions[0].NewDay)
	require.NotNil(t, first.Sessions[0].NewStart)
	assert.Equal(t, "CANCELLED", first.Sessions[1].Outcome)
	assert.Nil(t, first.Sessions[1].NewStart)

	second := notifications[1]
	assert.Equal(t, "fac-2", second.FacultyID)
	require.Len(t, second.Sessions, 1)
	assert.Equal(t, "RELOCATED", second.Sessions[0].Outcome)
}

func TestBuildFacultyNotificationsEmptyResult(t *testing.T) {
	notifications := BuildFacultyNotifications(time.Now(), "storm", timetable.ModeCancelAll, timetable.RescheduleResult{})
	assert.Empty(t, notifications)
}
