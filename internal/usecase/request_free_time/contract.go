package request_free_time

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, sess *domain.Session) (*domain.Session, error)
}

// SpecialistRepository интерфейс репозитория специалистов
type SpecialistRepository interface {
	EnsureExists(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Specialist, error)
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
