package domain

import "time"

// SlotStatus represents the status of an availability slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
)

// AvailabilitySlot represents a concrete, dated, bookable time interval
// Ranges are half-open: [StartTime, EndTime)
type AvailabilitySlot struct {
	ID           int64
	SpecialistID int64
	StartTime    time.Time
	EndTime      time.Time
	Status       SlotStatus
	CreatedAt    time.Time
}

// IsAvailable returns true if the slot can still be booked
func (s *AvailabilitySlot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// Range returns the slot's time range
func (s *AvailabilitySlot) Range() SlotRange {
	return SlotRange{Start: s.StartTime, End: s.EndTime}
}

// SlotRange half-open time interval [Start, End)
type SlotRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect
// Touching boundaries (one ends exactly where the other starts) do not overlap
func (r SlotRange) Overlaps(other SlotRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}
