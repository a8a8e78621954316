package timetable

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/timetable-api/internal/models"
)

// Constraints bounds the generator. MinGapMinutes and LabHoursRequired are
// accepted for API compatibility but inert: the fixed hourly grid already
// guarantees whole-slot gaps, and lab/room type matching is always enforced.
type Constraints struct {
	MaxDailyHours    int
	MaxWeeklyHours   int
	MinGapMinutes    int
	PreferredSlots   []int
	LabHoursRequired bool
}

// DefaultConstraints mirrors the documented generator defaults.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxDailyHours:    8,
		MaxWeeklyHours:   40,
		MinGapMinutes:    15,
		LabHoursRequired: true,
	}
}

// Warning reasons surfaced when a subject cannot be fully placed.
const (
	WarnNoQualifiedFaculty = "NO_QUALIFIED_FACULTY"
	WarnGridExhausted      = "GRID_EXHAUSTED"
)

// Warning reports a subject that ended up unassigned or under-scheduled.
type Warning struct {
	SubjectID     string `json:"subject_id"`
	Reason        string `json:"reason"`
	RequiredSlots int    `json:"required_slots"`
	AssignedSlots int    `json:"assigned_slots"`
}

// Generate builds a conflict-free weekly timetable from in-memory snapshots.
// The pass is deterministic and greedy: lab subjects first, then descending
// weekly hours, with input order as the stable tie-break. Partially placed
// subjects are kept and reported as warnings, never rolled back.
func Generate(
	faculty []models.FacultyMember,
	subjects []models.Subject,
	classrooms []models.Classroom,
	constraints Constraints,
	createdBy string,
) ([]models.TimetableEntry, []Warning) {
	sorted := make([]models.Subject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsLab != sorted[j].IsLab {
			return sorted[i].IsLab
		}
		return sorted[i].WeeklyHours > sorted[j].WeeklyHours
	})

	facultyCal := NewResourceCalendar()
	roomCal := NewResourceCalendar()
	slotOrder := candidateSlotOrder(constraints.PreferredSlots)

	var entries []models.TimetableEntry
	var warnings []Warning
	now := time.Now().UTC()

	for _, subject := range sorted {
		assigned := findAssignedFaculty(faculty, subject.ID)
		if assigned == nil {
			warnings = append(warnings, Warning{
				SubjectID:     subject.ID,
				Reason:        WarnNoQualifiedFaculty,
				RequiredSlots: requiredSlots(subject),
			})
			continue
		}

		required := requiredSlots(subject)
		placed := 0

		for _, day := range Weekdays {
			if placed >= required {
				break
			}
			for _, slotIndex := range slotOrder {
				if placed >= required {
					break
				}
				if !facultyCal.IsFree(assigned.ID, day, slotIndex) {
					continue
				}
				if constraints.MaxDailyHours > 0 && facultyCal.DailyCount(assigned.ID, day) >= constraints.MaxDailyHours {
					continue
				}
				if constraints.MaxWeeklyHours > 0 && facultyCal.WeeklyCount(assigned.ID) >= constraints.MaxWeeklyHours {
					continue
				}
				room := findFreeClassroom(classrooms, roomCal, subject.IsLab, day, slotIndex)
				if room == nil {
					continue
				}

				start, end := Slots[slotIndex].Window()
				classType := models.ClassTypeLecture
				if subject.IsLab {
					classType = models.ClassTypeLab
				}
				entries = append(entries, models.TimetableEntry{
					ID:          uuid.NewString(),
					SubjectID:   subject.ID,
					FacultyID:   assigned.ID,
					ClassroomID: room.ID,
					DayOfWeek:   int(day),
					StartTime:   start,
					EndTime:     end,
					ClassType:   classType,
					CreatedBy:   createdBy,
					CreatedAt:   now,
					UpdatedAt:   now,
				})
				facultyCal.Book(assigned.ID, day, slotIndex)
				roomCal.Book(room.ID, day, slotIndex)
				placed++
			}
		}

		if placed < required {
			warnings = append(warnings, Warning{
				SubjectID:     subject.ID,
				Reason:        WarnGridExhausted,
				RequiredSlots: required,
				AssignedSlots: placed,
			})
		}
	}

	return entries, warnings
}

func requiredSlots(subject models.Subject) int {
	return int(math.Ceil(subject.WeeklyHours))
}

// findAssignedFaculty returns the first faculty member in input order
// qualified for the subject. First match, not least loaded.
func findAssignedFaculty(faculty []models.FacultyMember, subjectID string) *models.FacultyMember {
	for i := range faculty {
		if faculty[i].QualifiedFor(subjectID) {
			return &faculty[i]
		}
	}
	return nil
}

// findFreeClassroom returns the first classroom in input order whose type
// matches the subject and which is unbooked at (day, slot).
func findFreeClassroom(classrooms []models.Classroom, cal *ResourceCalendar, isLab bool, day Day, slotIndex int) *models.Classroom {
	for i := range classrooms {
		if classrooms[i].IsLab != isLab {
			continue
		}
		if cal.IsFree(classrooms[i].ID, day, slotIndex) {
			return &classrooms[i]
		}
	}
	return nil
}

// candidateSlotOrder yields preferred slot indices first, then the remaining
// canonical slots in grid order.
func candidateSlotOrder(preferred []int) []int {
	order := make([]int, 0, SlotCount())
	seen := make(map[int]bool, SlotCount())
	for _, idx := range preferred {
		if idx < 0 || idx >= SlotCount() || seen[idx] {
			continue
		}
		order = append(order, idx)
		seen[idx] = true
	}
	for idx := 0; idx < SlotCount(); idx++ {
		if !seen[idx] {
			order = append(order, idx)
		}
	}
	return order
}
