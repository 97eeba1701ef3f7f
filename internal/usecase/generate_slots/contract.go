package generate_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	ListBySpecialist(ctx context.Context, specialistID int64, onlyActive bool) ([]*domain.ScheduleTemplate, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListRanges получает диапазоны существующих слотов, пересекающих [from, to)
	ListRanges(ctx context.Context, specialistID int64, from, to time.Time) ([]domain.SlotRange, error)
	// CreateBatch вставляет кандидатов, пропуская конфликты с существующими слотами
	CreateBatch(ctx context.Context, slots []*domain.AvailabilitySlot) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
