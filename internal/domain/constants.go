package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// AllowedSlotDurations допустимые длительности слота шаблона в минутах
var AllowedSlotDurations = []int{15, 30, 45, 60, 90, 120}

// IsAllowedSlotDuration проверяет длительность слота по allow-list
func IsAllowedSlotDuration(minutes int) bool {
	for _, d := range AllowedSlotDurations {
		if d == minutes {
			return true
		}
	}
	return false
}
