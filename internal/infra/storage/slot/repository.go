package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

// Коды ошибок PostgreSQL, означающие конфликт с уже существующим слотом
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// Repository репозиторий для работы со слотами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет кандидатов в слоты по одному, пропуская конфликты
//
// Уникальный индекс и exclusion constraint на (specialist_id, tstzrange)
// гарантируют отсутствие дубликатов даже при конкурентных запусках генератора:
// кандидат, проигравший гонку, даёт ошибку 23505/23P01 и просто пропускается.
// Возвращает количество реально вставленных слотов.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.AvailabilitySlot) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	inserted := 0
	for _, s := range slots {
		query, args, err := psqlbuilder.Insert("availability_slots").
			Columns(
				"specialist_id",
				"start_time",
				"end_time",
				"status",
			).
			Values(
				s.SpecialistID,
				s.StartTime,
				s.EndTime,
				s.Status,
			).
			Suffix("RETURNING id, created_at").
			ToSql()

		if err != nil {
			return inserted, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt sql.NullTime
		err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt)
		if err != nil {
			if isSlotConflict(err) {
				// Слот уже существует (сгенерирован параллельным запуском)
				continue
			}
			return inserted, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
		}

		s.CreatedAt = createdAt.Time
		inserted++
	}

	return inserted, nil
}

// isSlotConflict проверяет, что ошибка вызвана нарушением уникальности
// или exclusion constraint по диапазону
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgUniqueViolation || pqErr.Code == pgExclusionViolation
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"specialist_id",
		"start_time",
		"end_time",
		"status",
		"created_at",
	).
		From("availability_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.AvailabilitySlot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SpecialistID,
		&s.StartTime,
		&s.EndTime,
		&s.Status,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}

// ListRanges получает диапазоны всех слотов специалиста, пересекающих [from, to)
// Используется генератором для проверки пересечений перед вставкой
func (r *Repository) ListRanges(ctx context.Context, specialistID int64, from, to time.Time) ([]domain.SlotRange, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time", "end_time").
		From("availability_slots").
		Where(squirrel.Eq{"specialist_id": specialistID}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.SlotRange, 0)
	for rows.Next() {
		var rng domain.SlotRange
		if err := rows.Scan(&rng.Start, &rng.End); err != nil {
			return nil, fmt.Errorf("%w: ListRanges - scan row: %v", ErrScanRow, err)
		}
		ranges = append(ranges, rng)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// ListAvailable получает будущие свободные слоты специалиста
func (r *Repository) ListAvailable(ctx context.Context, specialistID int64, after time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"specialist_id",
		"start_time",
		"end_time",
		"status",
		"created_at",
	).
		From("availability_slots").
		Where(squirrel.Eq{
			"specialist_id": specialistID,
			"status":        domain.SlotStatusAvailable,
		}).
		Where(squirrel.GtOrEq{"start_time": after}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var s domain.AvailabilitySlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.SpecialistID,
			&s.StartTime,
			&s.EndTime,
			&s.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailable - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// MarkBooked атомарно переводит слот available -> booked
//
// Условный UPDATE - единственная защита от двойного бронирования:
// из двух конкурентных вызовов ровно один затронет строку, второй получит
// ErrSlotNotAvailable. Никаких блокировок на уровне приложения не берется.
func (r *Repository) MarkBooked(ctx context.Context, id int64) (*domain.AvailabilitySlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("status", domain.SlotStatusBooked).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.SlotStatusAvailable,
		}).
		Suffix("RETURNING specialist_id, start_time, end_time, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	s := domain.AvailabilitySlot{
		ID:     id,
		Status: domain.SlotStatusBooked,
	}
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.SpecialistID,
		&s.StartTime,
		&s.EndTime,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}
