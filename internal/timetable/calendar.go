package timetable

// ResourceCalendar tracks per-resource (day, slot) occupancy during a single
// generation run. One instance exists per resource category (faculty,
// classroom); nothing is persisted.
type ResourceCalendar struct {
	booked map[string]map[Day]map[int]bool
	weekly map[string]int
}

// NewResourceCalendar returns an empty calendar.
func NewResourceCalendar() *ResourceCalendar {
	return &ResourceCalendar{
		booked: make(map[string]map[Day]map[int]bool),
		weekly: make(map[string]int),
	}
}

// IsFree reports whether no booking exists for the resource at (day, slot).
func (c *ResourceCalendar) IsFree(resourceID string, day Day, slotIndex int) bool {
	days, ok := c.booked[resourceID]
	if !ok {
		return true
	}
	slots, ok := days[day]
	if !ok {
		return true
	}
	return !slots[slotIndex]
}

// Book records occupancy for the resource at (day, slot). Booking the same
// triple twice is a no-op.
func (c *ResourceCalendar) Book(resourceID string, day Day, slotIndex int) {
	days, ok := c.booked[resourceID]
	if !ok {
		days = make(map[Day]map[int]bool)
		c.booked[resourceID] = days
	}
	slots, ok := days[day]
	if !ok {
		slots = make(map[int]bool)
		days[day] = slots
	}
	if slots[slotIndex] {
		return
	}
	slots[slotIndex] = true
	c.weekly[resourceID]++
}

// DailyCount returns the number of slots booked for the resource on the day.
func (c *ResourceCalendar) DailyCount(resourceID string, day Day) int {
	return len(c.booked[resourceID][day])
}

// WeeklyCount returns the number of slots booked for the resource this week.
func (c *ResourceCalendar) WeeklyCount(resourceID string) int {
	return c.weekly[resourceID]
}
