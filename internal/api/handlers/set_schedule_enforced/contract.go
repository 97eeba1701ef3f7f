package set_schedule_enforced

import "context"

type ScheduleService interface {
	SetScheduleEnforced(ctx context.Context, specialistID, userID int64, enforced bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
