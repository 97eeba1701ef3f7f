package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	assert.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:45")
	assert.NoError(t, err)

	minutes, err := ts.Minutes()
	assert.NoError(t, err)
	assert.Equal(t, 10*60+45, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	assert.NoError(t, err)

	end, err := ts.AddMinutes(90)
	assert.NoError(t, err)
	assert.Equal(t, "10:30", end.String())

	// Конец дня выражается как 24:00, а не перенос на следующий день
	late, err := NewTimeStringFromString("23:00")
	assert.NoError(t, err)

	midnight, err := late.AddMinutes(60)
	assert.NoError(t, err)
	assert.Equal(t, "24:00", midnight.String())
}

func TestTimeString_Comparison(t *testing.T) {
	a, _ := NewTimeStringFromString("09:00")
	b, _ := NewTimeStringFromString("18:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_At(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	assert.NoError(t, err)

	ts, _ := NewTimeStringFromString("10:00")
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)

	at, err := ts.At(date, loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, loc), at)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL TIME приходит как строка с секундами
	assert.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	assert.NoError(t, ts.Scan([]byte("18:00:00")))
	assert.Equal(t, "18:00", ts.String())

	assert.Error(t, ts.Scan(12345))
}
