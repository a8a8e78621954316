package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalSlotsSkipLunch(t *testing.T) {
	require.Len(t, Slots, 7)
	assert.Equal(t, 9, Slots[0].StartHour)
	assert.Equal(t, 17, Slots[len(Slots)-1].EndHour)

	// 12-13 is the fixed lunch gap.
	assert.Equal(t, 12, Slots[2].EndHour)
	assert.Equal(t, 13, Slots[3].StartHour)

	for _, slot := range Slots {
		assert.Equal(t, slot.StartHour+1, slot.EndHour, "slots are one hour wide")
	}
}

func TestSlotWindow(t *testing.T) {
	start, end := Slots[3].Window()
	assert.Equal(t, 13, start.Hour())
	assert.Equal(t, 14, end.Hour())
	assert.Equal(t, 0, start.Minute())
}

func TestDayFromDate(t *testing.T) {
	// 2025-06-02 is a Monday.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for offset, want := range []Day{Monday, Tuesday, Wednesday, Thursday, Friday} {
		day, err := DayFromDate(monday.AddDate(0, 0, offset))
		require.NoError(t, err)
		assert.Equal(t, want, day)
	}
}

func TestDayFromDateRejectsWeekend(t *testing.T) {
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	_, err := DayFromDate(saturday)
	require.Error(t, err)

	sunday := saturday.AddDate(0, 0, 1)
	_, err = DayFromDate(sunday)
	require.Error(t, err)
}

func TestDayValid(t *testing.T) {
	assert.True(t, Monday.Valid())
	assert.True(t, Friday.Valid())
	assert.False(t, Day(0).Valid())
	assert.False(t, Day(6).Valid())
}
