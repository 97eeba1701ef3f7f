package slot

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const (
	markBookedQuery  = "UPDATE availability_slots SET status = $1 WHERE id = $2 AND status = $3 RETURNING specialist_id, start_time, end_time, created_at"
	insertSlotQuery  = "INSERT INTO availability_slots (specialist_id,start_time,end_time,status) VALUES ($1,$2,$3,$4) RETURNING id, created_at"
	getSlotByIDQuery = "SELECT id, specialist_id, start_time, end_time, status, created_at FROM availability_slots WHERE id = $1"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestSlotRepository_MarkBooked(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	createdAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Условие status=available входит в сам UPDATE
	mock.ExpectQuery(regexp.QuoteMeta(markBookedQuery)).
		WithArgs(string(domain.SlotStatusBooked), int64(5), string(domain.SlotStatusAvailable)).
		WillReturnRows(sqlmock.NewRows([]string{"specialist_id", "start_time", "end_time", "created_at"}).
			AddRow(int64(10), start, end, createdAt))

	slot, err := repo.MarkBooked(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), slot.ID)
	assert.Equal(t, int64(10), slot.SpecialistID)
	assert.Equal(t, domain.SlotStatusBooked, slot.Status)
	assert.Equal(t, start, slot.StartTime)
	assert.Equal(t, end, slot.EndTime)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_MarkBooked_NotAvailable(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Ноль затронутых строк: слот занят или не существует
	mock.ExpectQuery(regexp.QuoteMeta(markBookedQuery)).
		WithArgs(string(domain.SlotStatusBooked), int64(5), string(domain.SlotStatusAvailable)).
		WillReturnRows(sqlmock.NewRows([]string{"specialist_id", "start_time", "end_time", "created_at"}))

	_, err := repo.MarkBooked(context.Background(), 5)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getSlotByIDQuery)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "specialist_id", "start_time", "end_time", "status", "created_at"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_CreateBatch_SkipsConflicts(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	slots := []*domain.AvailabilitySlot{
		{SpecialistID: 10, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.SlotStatusAvailable},
		{SpecialistID: 10, StartTime: start.Add(time.Hour), EndTime: start.Add(2 * time.Hour), Status: domain.SlotStatusAvailable},
		{SpecialistID: 10, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), Status: domain.SlotStatusAvailable},
	}

	createdAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Первый кандидат вставляется
	mock.ExpectQuery(regexp.QuoteMeta(insertSlotQuery)).
		WithArgs(int64(10), slots[0].StartTime, slots[0].EndTime, string(domain.SlotStatusAvailable)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	// Второй проигрывает гонку параллельному генератору - пропускается
	mock.ExpectQuery(regexp.QuoteMeta(insertSlotQuery)).
		WithArgs(int64(10), slots[1].StartTime, slots[1].EndTime, string(domain.SlotStatusAvailable)).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pgExclusionViolation)})

	// Третий вставляется
	mock.ExpectQuery(regexp.QuoteMeta(insertSlotQuery)).
		WithArgs(int64(10), slots[2].StartTime, slots[2].EndTime, string(domain.SlotStatusAvailable)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), createdAt))

	inserted, err := repo.CreateBatch(context.Background(), slots)
	require.NoError(t, err)

	assert.Equal(t, 2, inserted)
	assert.Equal(t, int64(1), slots[0].ID)
	assert.Equal(t, int64(3), slots[2].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_CreateBatch_DuplicateKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	slots := []*domain.AvailabilitySlot{
		{SpecialistID: 10, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.SlotStatusAvailable},
	}

	mock.ExpectQuery(regexp.QuoteMeta(insertSlotQuery)).
		WithArgs(int64(10), slots[0].StartTime, slots[0].EndTime, string(domain.SlotStatusAvailable)).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pgUniqueViolation)})

	inserted, err := repo.CreateBatch(context.Background(), slots)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
