package domain

import "time"

// Specialist represents the scheduling profile of a service provider
// Identity comes from the external account system; this aggregate only
// carries the scheduling policy
type Specialist struct {
	ID               int64
	ScheduleEnforced bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
