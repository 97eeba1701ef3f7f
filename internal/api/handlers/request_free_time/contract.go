package request_free_time

import (
	"context"

	requestFreeTime "github.com/m04kA/SMC-ScheduleService/internal/usecase/request_free_time"
)

type RequestFreeTimeUseCase interface {
	Execute(ctx context.Context, req *requestFreeTime.Request) (*requestFreeTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
