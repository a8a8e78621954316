package timetable

import (
	"fmt"
	"time"
)

// Day is a schedulable weekday, 1 (Monday) through 5 (Friday).
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays enumerates the schedulable week in walk order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

var dayNames = map[Day]string{
	Monday:    "MONDAY",
	Tuesday:   "TUESDAY",
	Wednesday: "WEDNESDAY",
	Thursday:  "THURSDAY",
	Friday:    "FRIDAY",
}

// Valid reports whether d is inside the schedulable 1-5 range.
func (d Day) Valid() bool {
	return d >= Monday && d <= Friday
}

func (d Day) String() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DAY(%d)", int(d))
}

// DayFromDate converts a calendar date to a schedulable Day. Saturday and
// Sunday dates are rejected rather than folded into the week.
func DayFromDate(date time.Time) (Day, error) {
	weekday := date.Weekday()
	if weekday == time.Sunday || weekday == time.Saturday {
		return 0, fmt.Errorf("%s falls on a %s, not a schedulable weekday", date.Format("2006-01-02"), weekday)
	}
	return Day(int(weekday)), nil
}

// TimeSlot is one fixed one-hour teaching interval on the 24-hour clock.
type TimeSlot struct {
	StartHour int
	EndHour   int
}

// Slots is the canonical ordered daily slot sequence shared by generation and
// rescheduling. Slot 12-13 is the fixed lunch gap and never appears.
var Slots = []TimeSlot{
	{StartHour: 9, EndHour: 10},
	{StartHour: 10, EndHour: 11},
	{StartHour: 11, EndHour: 12},
	{StartHour: 13, EndHour: 14},
	{StartHour: 14, EndHour: 15},
	{StartHour: 15, EndHour: 16},
	{StartHour: 16, EndHour: 17},
}

// SlotCount returns the number of canonical daily slots.
func SlotCount() int {
	return len(Slots)
}

// Window returns the wall-clock start and end times for the slot. The date
// component is a fixed reference and carries no meaning.
func (s TimeSlot) Window() (time.Time, time.Time) {
	start := time.Date(1, time.January, 1, s.StartHour, 0, 0, 0, time.UTC)
	end := time.Date(1, time.January, 1, s.EndHour, 0, 0, 0, time.UTC)
	return start, end
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", s.StartHour, s.EndHour)
}
