package get_schedule_info

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetScheduleInfo(ctx context.Context, specialistID int64) (*models.ScheduleInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
