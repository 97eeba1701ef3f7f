package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustRange(t *testing.T, start, end string) SlotRange {
	t.Helper()

	s, err := time.Parse(time.RFC3339, start)
	assert.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	assert.NoError(t, err)

	return SlotRange{Start: s, End: e}
}

func TestSlotRange_Overlaps(t *testing.T) {
	base := mustRange(t, "2026-09-07T10:00:00Z", "2026-09-07T11:00:00Z")

	tests := []struct {
		name     string
		other    SlotRange
		overlaps bool
	}{
		{"identical", mustRange(t, "2026-09-07T10:00:00Z", "2026-09-07T11:00:00Z"), true},
		{"contained", mustRange(t, "2026-09-07T10:15:00Z", "2026-09-07T10:45:00Z"), true},
		{"partial left", mustRange(t, "2026-09-07T09:30:00Z", "2026-09-07T10:30:00Z"), true},
		{"partial right", mustRange(t, "2026-09-07T10:30:00Z", "2026-09-07T11:30:00Z"), true},
		{"covering", mustRange(t, "2026-09-07T09:00:00Z", "2026-09-07T12:00:00Z"), true},
		{"touching left boundary", mustRange(t, "2026-09-07T09:00:00Z", "2026-09-07T10:00:00Z"), false},
		{"touching right boundary", mustRange(t, "2026-09-07T11:00:00Z", "2026-09-07T12:00:00Z"), false},
		{"disjoint", mustRange(t, "2026-09-07T13:00:00Z", "2026-09-07T14:00:00Z"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}

func TestAvailabilitySlot_IsAvailable(t *testing.T) {
	slot := &AvailabilitySlot{Status: SlotStatusAvailable}
	assert.True(t, slot.IsAvailable())

	slot.Status = SlotStatusBooked
	assert.False(t, slot.IsAvailable())
}
