package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Weekday represents a day of week in the schedule model: 0=Monday ... 6=Sunday
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// IsValid returns true if the weekday is within 0..6
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// FromTimeWeekday converts time.Weekday (0=Sunday) to the Monday-based Weekday
func FromTimeWeekday(w time.Weekday) Weekday {
	if w == time.Sunday {
		return Sunday
	}
	return Weekday(int(w) - 1)
}

// ScheduleTemplate represents a recurring weekly availability rule of a specialist
type ScheduleTemplate struct {
	ID                  int64
	SpecialistID        int64
	DayOfWeek           Weekday
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	IsActive            bool
	CreatedAt           time.Time
}

// MatchesDate returns true if the template applies to the given calendar date
func (t *ScheduleTemplate) MatchesDate(date time.Time) bool {
	return FromTimeWeekday(date.Weekday()) == t.DayOfWeek
}
