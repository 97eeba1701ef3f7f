package list_my_sessions

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions/models"
)

type SessionService interface {
	ListMy(ctx context.Context, req *models.ListSessionsRequest) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
