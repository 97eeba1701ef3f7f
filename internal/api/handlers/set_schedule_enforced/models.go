package set_schedule_enforced

// SetScheduleEnforcedRequest HTTP request model
type SetScheduleEnforcedRequest struct {
	ScheduleEnforced bool `json:"scheduleEnforced"`
}
