package domain

import "time"

// SessionStatus represents the status of a consultation session
type SessionStatus string

const (
	StatusPending   SessionStatus = "pending"
	StatusConfirmed SessionStatus = "confirmed"
	StatusCompleted SessionStatus = "completed"
	StatusCanceled  SessionStatus = "canceled"
)

// sessionTransitions закрытая таблица допустимых переходов статусов
// Любой переход, не перечисленный здесь, запрещен
var sessionTransitions = map[SessionStatus]map[SessionStatus]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCanceled:  true,
	},
	StatusConfirmed: {
		StatusCompleted: true,
		StatusCanceled:  true,
	},
	// completed и canceled - терминальные состояния
}

// IsValid returns true if the status is one of the known session statuses
func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no transition leaves this status
func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransitionTo reports whether the transition s -> to is permitted
func (s SessionStatus) CanTransitionTo(to SessionStatus) bool {
	return sessionTransitions[s][to]
}

// Session represents a scheduled (or requested) consultation between
// a specialist and a client
type Session struct {
	ID           int64
	SpecialistID int64
	ClientID     *int64
	SlotID       *int64 // исходный слот, если сессия создана бронированием слота
	StartTime    time.Time
	EndTime      time.Time
	Status       SessionStatus
	ClientNotes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled returns true if the session can still be cancelled
func (s *Session) CanBeCancelled() bool {
	return s.Status.CanTransitionTo(StatusCanceled)
}

// IsFromSlot returns true if the session was created by booking a slot
func (s *Session) IsFromSlot() bool {
	return s.SlotID != nil
}

// BelongsToSpecialist returns true if the session is owned by the given specialist
func (s *Session) BelongsToSpecialist(specialistID int64) bool {
	return s.SpecialistID == specialistID
}

// BelongsToClient returns true if the session was booked by the given client
func (s *Session) BelongsToClient(clientID int64) bool {
	return s.ClientID != nil && *s.ClientID == clientID
}

// SessionFilter фильтр для выборки сессий
type SessionFilter struct {
	SpecialistID *int64
	ClientID     *int64
	Status       *SessionStatus
}
