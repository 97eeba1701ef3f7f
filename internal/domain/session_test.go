package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    SessionStatus
		to      SessionStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to canceled", StatusPending, StatusCanceled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to canceled", StatusConfirmed, StatusCanceled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCanceled, false},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, false},
		{"canceled is terminal", StatusCanceled, StatusConfirmed, false},
		{"canceled to pending", StatusCanceled, StatusPending, false},
		{"no self transition", StatusPending, StatusPending, false},
		{"unknown status has no transitions", SessionStatus("draft"), StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSessionStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}

func TestSessionStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCanceled.IsValid())
	assert.False(t, SessionStatus("").IsValid())
	assert.False(t, SessionStatus("done").IsValid())
}

func TestSession_Participants(t *testing.T) {
	clientID := int64(42)
	slotID := int64(7)

	sess := &Session{
		SpecialistID: 10,
		ClientID:     &clientID,
		SlotID:       &slotID,
		Status:       StatusConfirmed,
	}

	assert.True(t, sess.BelongsToSpecialist(10))
	assert.False(t, sess.BelongsToSpecialist(42))
	assert.True(t, sess.BelongsToClient(42))
	assert.False(t, sess.BelongsToClient(10))
	assert.True(t, sess.IsFromSlot())
	assert.True(t, sess.CanBeCancelled())

	// Сессия без клиента никому из клиентов не принадлежит
	orphan := &Session{SpecialistID: 10, Status: StatusCompleted}
	assert.False(t, orphan.BelongsToClient(42))
	assert.False(t, orphan.IsFromSlot())
	assert.False(t, orphan.CanBeCancelled())
}
