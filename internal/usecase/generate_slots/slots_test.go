package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// 2026-09-07 - понедельник
var (
	testFrom = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testTo   = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
)

func tmpl(day domain.Weekday, start, end string, duration int) *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		SpecialistID:        1,
		DayOfWeek:           day,
		StartTime:           types.TimeString(start),
		EndTime:             types.TimeString(end),
		SlotDurationMinutes: duration,
		IsActive:            true,
	}
}

func TestExpandTemplates_SingleWindow(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		tmpl(domain.Monday, "09:00", "12:00", 60),
	}

	got, err := expandTemplates(templates, nil, testFrom, testTo, time.UTC)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), got[0].Start)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), got[0].End)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), got[1].Start)
	assert.Equal(t, time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC), got[2].Start)
	assert.Equal(t, time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC), got[2].End)
}

func TestExpandTemplates_TrailingRemainderDropped(t *testing.T) {
	// 09:00-10:30 при шаге 60 дает один слот, хвост 10:00-10:30 отбрасывается
	templates := []*domain.ScheduleTemplate{
		tmpl(domain.Monday, "09:00", "10:30", 60),
	}

	got, err := expandTemplates(templates, nil, testFrom, testTo, time.UTC)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), got[0].Start)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), got[0].End)
}

func TestExpandTemplates_OverlappingTemplatesNoDuplicates(t *testing.T) {
	// Два пересекающихся шаблона на один день: кандидаты второго,
	// задевающие уже выданные, отбрасываются
	templates := []*domain.ScheduleTemplate{
		tmpl(domain.Monday, "09:00", "11:00", 60),
		tmpl(domain.Monday, "10:00", "13:00", 60),
	}

	got, err := expandTemplates(templates, nil, testFrom, testTo, time.UTC)
	require.NoError(t, err)

	// 09-10, 10-11 из первого; 10-11 из второго конфликтует, 11-12 и 12-13 проходят
	require.Len(t, got, 4)
	for i, r := range got {
		for j, other := range got {
			if i == j {
				continue
			}
			assert.False(t, r.Overlaps(other), "slots %d and %d overlap: %v / %v", i, j, r, other)
		}
	}
}

func TestExpandTemplates_SkipsExistingSlots(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		tmpl(domain.Monday, "09:00", "12:00", 60),
	}

	// Первый запуск
	first, err := expandTemplates(templates, nil, testFrom, testTo, time.UTC)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Повторный запуск поверх результата первого не выдает ничего
	second, err := expandTemplates(templates, first, testFrom, testTo, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, second)

	// Частичное перекрытие: занят только средний слот
	middle := []domain.SlotRange{first[1]}
	third, err := expandTemplates(templates, middle, testFrom, testTo, time.UTC)
	require.NoError(t, err)
	require.Len(t, third, 2)
	assert.Equal(t, first[0], third[0])
	assert.Equal(t, first[2], third[1])
}

func TestExpandTemplates_InactiveTemplatesIgnored(t *testing.T) {
	inactive := tmpl(domain.Monday, "09:00", "12:00", 60)
	inactive.IsActive = false

	got, err := expandTemplates([]*domain.ScheduleTemplate{inactive}, nil, testFrom, testTo, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpandTemplates_WeekdayRecurrence(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		tmpl(domain.Tuesday, "10:00", "11:00", 60),
	}

	// Две недели - два вторника
	got, err := expandTemplates(templates, nil, testFrom, testFrom.AddDate(0, 0, 14), time.UTC)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC), got[0].Start)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), got[1].Start)
}

func TestExpandTemplates_TimezoneApplied(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	templates := []*domain.ScheduleTemplate{
		tmpl(domain.Monday, "09:00", "10:00", 60),
	}

	from := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
	got, err := expandTemplates(templates, nil, from, from.AddDate(0, 0, 1), loc)
	require.NoError(t, err)

	require.Len(t, got, 1)
	// 09:00 по Москве = 06:00 UTC
	assert.Equal(t, time.Date(2026, 9, 7, 6, 0, 0, 0, time.UTC), got[0].Start.UTC())
}

func TestExpandWindow_EndOfDay(t *testing.T) {
	// Окно до конца суток: последний слот 23:00-24:00
	got, err := expandWindow(tmpl(domain.Monday, "22:00", "24:00", 60), testFrom, time.UTC)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), got[1].End)
}
