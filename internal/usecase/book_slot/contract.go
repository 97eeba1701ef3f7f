package book_slot

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// MarkBooked атомарно переводит слот available -> booked
	MarkBooked(ctx context.Context, id int64) (*domain.AvailabilitySlot, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, sess *domain.Session) (*domain.Session, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
