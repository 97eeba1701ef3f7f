package list_templates

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/templates/models"
)

type TemplateService interface {
	List(ctx context.Context, specialistID int64) (*models.TemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
