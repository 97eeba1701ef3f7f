package request_free_time

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type fakeSessionRepo struct {
	nextID   int64
	sessions []*domain.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, sess *domain.Session) (*domain.Session, error) {
	f.nextID++
	created := *sess
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.sessions = append(f.sessions, &created)
	return &created, nil
}

type fakeSpecialistRepo struct {
	specialists map[int64]*domain.Specialist
}

func (f *fakeSpecialistRepo) EnsureExists(_ context.Context, id int64) error {
	if _, ok := f.specialists[id]; !ok {
		f.specialists[id] = &domain.Specialist{ID: id}
	}
	return nil
}

func (f *fakeSpecialistRepo) GetByID(_ context.Context, id int64) (*domain.Specialist, error) {
	sp := f.specialists[id]
	copied := *sp
	return &copied, nil
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

func newTestUseCase(specialists *fakeSpecialistRepo, sessions *fakeSessionRepo) *UseCase {
	uc := NewUseCase(sessions, specialists, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		SpecialistID: 10,
		ClientID:     42,
		Start:        testNow.Add(24 * time.Hour),
		End:          testNow.Add(25 * time.Hour),
	}
}

func TestRequestFreeTime_Execute(t *testing.T) {
	specialists := &fakeSpecialistRepo{specialists: map[int64]*domain.Specialist{}}
	sessions := &fakeSessionRepo{}
	uc := newTestUseCase(specialists, sessions)

	notes := "первая консультация"
	req := validRequest()
	req.Notes = &notes

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(10), resp.SpecialistID)
	assert.Equal(t, int64(42), resp.ClientID)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, notes, *resp.Notes)

	// Специалист заведен лениво с политикой по умолчанию
	require.Contains(t, specialists.specialists, int64(10))
	assert.False(t, specialists.specialists[10].ScheduleEnforced)

	require.Len(t, sessions.sessions, 1)
	sess := sessions.sessions[0]
	assert.Equal(t, domain.StatusPending, sess.Status)
	assert.Nil(t, sess.SlotID)
}

func TestRequestFreeTime_Execute_ScheduleEnforced(t *testing.T) {
	specialists := &fakeSpecialistRepo{specialists: map[int64]*domain.Specialist{
		10: {ID: 10, ScheduleEnforced: true},
	}}
	sessions := &fakeSessionRepo{}
	uc := newTestUseCase(specialists, sessions)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleEnforced)
	assert.Empty(t, sessions.sessions)
}

func TestRequestFreeTime_Execute_Validation(t *testing.T) {
	specialists := &fakeSpecialistRepo{specialists: map[int64]*domain.Specialist{}}
	uc := newTestUseCase(specialists, &fakeSessionRepo{})

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"zero specialist", func(r *Request) { r.SpecialistID = 0 }, ErrInvalidInput},
		{"negative client", func(r *Request) { r.ClientID = -5 }, ErrInvalidInput},
		{"start equals end", func(r *Request) { r.End = r.Start }, ErrInvalidTimeRange},
		{"start after end", func(r *Request) { r.Start, r.End = r.End, r.Start }, ErrInvalidTimeRange},
		{"start in past", func(r *Request) {
			r.Start = testNow.Add(-time.Hour)
			r.End = testNow.Add(time.Hour)
		}, ErrStartInPast},
		{"notes too long", func(r *Request) {
			long := strings.Repeat("a", domain.MaxNotesLength+1)
			r.Notes = &long
		}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
