package templates

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
	ListBySpecialist(ctx context.Context, specialistID int64, onlyActive bool) ([]*domain.ScheduleTemplate, error)
	SetActive(ctx context.Context, id, specialistID int64, active bool) error
	Delete(ctx context.Context, id, specialistID int64) error
}

// SpecialistRepository интерфейс репозитория специалистов
type SpecialistRepository interface {
	EnsureExists(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
