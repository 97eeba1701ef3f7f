package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	specialistRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/specialist"
)

type fakeSpecialistRepo struct {
	specialists map[int64]*domain.Specialist
}

func (f *fakeSpecialistRepo) GetByID(_ context.Context, id int64) (*domain.Specialist, error) {
	sp, ok := f.specialists[id]
	if !ok {
		return nil, specialistRepo.ErrSpecialistNotFound
	}
	copied := *sp
	return &copied, nil
}

func (f *fakeSpecialistRepo) SetScheduleEnforced(_ context.Context, id int64, enforced bool) error {
	sp, ok := f.specialists[id]
	if !ok {
		sp = &domain.Specialist{ID: id}
		f.specialists[id] = sp
	}
	sp.ScheduleEnforced = enforced
	return nil
}

type fakeSlotRepo struct {
	slots []*domain.AvailabilitySlot
}

func (f *fakeSlotRepo) ListAvailable(_ context.Context, specialistID int64, after time.Time) ([]*domain.AvailabilitySlot, error) {
	result := make([]*domain.AvailabilitySlot, 0)
	for _, s := range f.slots {
		if s.SpecialistID != specialistID || s.Status != domain.SlotStatusAvailable {
			continue
		}
		if s.StartTime.Before(after) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestService(specialists *fakeSpecialistRepo, slots *fakeSlotRepo) *Service {
	svc := NewService(specialists, slots, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: testNow}
	return svc
}

func TestSchedule_GetScheduleInfo(t *testing.T) {
	specialists := &fakeSpecialistRepo{specialists: map[int64]*domain.Specialist{
		10: {ID: 10, ScheduleEnforced: true},
	}}
	slots := &fakeSlotRepo{slots: []*domain.AvailabilitySlot{
		{ID: 1, SpecialistID: 10, StartTime: testNow.Add(time.Hour), EndTime: testNow.Add(2 * time.Hour), Status: domain.SlotStatusAvailable},
		{ID: 2, SpecialistID: 10, StartTime: testNow.Add(-time.Hour), EndTime: testNow, Status: domain.SlotStatusAvailable},
		{ID: 3, SpecialistID: 10, StartTime: testNow.Add(3 * time.Hour), EndTime: testNow.Add(4 * time.Hour), Status: domain.SlotStatusBooked},
	}}

	resp, err := newTestService(specialists, slots).GetScheduleInfo(context.Background(), 10)
	require.NoError(t, err)

	assert.True(t, resp.ScheduleEnforced)
	// Прошедшие и занятые слоты не попадают в доступность
	require.Len(t, resp.Availability, 1)
	assert.Equal(t, int64(1), resp.Availability[0].ID)
}

func TestSchedule_GetScheduleInfo_UnknownSpecialist(t *testing.T) {
	specialists := &fakeSpecialistRepo{specialists: map[int64]*domain.Specialist{}}
	svc := newTestService(specialists, &fakeSlotRepo{})

	// Специалист без профиля - режим по умолчанию, пустая доступность
	resp, err := svc.GetScheduleInfo(context.Background(), 77)
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.SpecialistID)
	assert.False(t, resp.ScheduleEnforced)
	assert.Empty(t, resp.Availability)
}

func TestSchedule_GetScheduleInfo_InvalidID(t *testing.T) {
	svc := newTestService(&fakeSpecialistRepo{specialists: map[int64]*domain.Specialist{}}, &fakeSlotRepo{})

	_, err := svc.GetScheduleInfo(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSchedule_SetScheduleEnforced(t *testing.T) {
	specialists := &fakeSpecialistRepo{specialists: map[int64]*domain.Specialist{}}
	svc := newTestService(specialists, &fakeSlotRepo{})

	require.NoError(t, svc.SetScheduleEnforced(context.Background(), 10, 10, true))
	assert.True(t, specialists.specialists[10].ScheduleEnforced)

	require.NoError(t, svc.SetScheduleEnforced(context.Background(), 10, 10, false))
	assert.False(t, specialists.specialists[10].ScheduleEnforced)
}

func TestSchedule_SetScheduleEnforced_AccessDenied(t *testing.T) {
	specialists := &fakeSpecialistRepo{specialists: map[int64]*domain.Specialist{}}
	svc := newTestService(specialists, &fakeSlotRepo{})

	// Чужой флаг менять нельзя
	err := svc.SetScheduleEnforced(context.Background(), 10, 42, true)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, specialists.specialists)
}
