package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SpecialistRepository интерфейс репозитория специалистов
type SpecialistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Specialist, error)
	SetScheduleEnforced(ctx context.Context, id int64, enforced bool) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListAvailable(ctx context.Context, specialistID int64, after time.Time) ([]*domain.AvailabilitySlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
