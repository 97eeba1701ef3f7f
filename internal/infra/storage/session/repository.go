package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

// Repository репозиторий для работы с сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// sessionColumns полный набор колонок таблицы sessions
var sessionColumns = []string{
	"id",
	"specialist_id",
	"client_id",
	"slot_id",
	"start_time",
	"end_time",
	"status",
	"client_notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create создает новую сессию
// Вызывается внутри транзакции бронирования: откат транзакции гарантирует,
// что неудачное бронирование не оставит частично созданную сессию
func (r *Repository) Create(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"specialist_id",
			"client_id",
			"slot_id",
			"start_time",
			"end_time",
			"status",
			"client_notes",
		).
		Values(
			sess.SpecialistID,
			sess.ClientID,
			sess.SlotID,
			sess.StartTime,
			sess.EndTime,
			sess.Status,
			sess.ClientNotes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sess.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sess.CreatedAt = createdAt.Time
	sess.UpdatedAt = updatedAt.Time

	return sess, nil
}

// GetByID получает сессию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sess, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	return sess, nil
}

// List получает сессии по фильтру
// Сортировка: сначала ближайшие по времени начала
func (r *Repository) List(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("sessions").
		OrderBy("start_time DESC")

	if filter.SpecialistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialist_id": *filter.SpecialistID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

// UpdateStatus обновляет статус сессии
// Допустимость перехода проверяется сервисным слоем по таблице переходов
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Cancel отменяет сессию с указанием причины
// Сессия не удаляется физически - отмена это статус, история сохраняется
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("status", domain.StatusCanceled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSession сканирует одну строку в доменную модель
func scanSession(row rowScanner) (*domain.Session, error) {
	var sess domain.Session
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&sess.ID,
		&sess.SpecialistID,
		&sess.ClientID,
		&sess.SlotID,
		&sess.StartTime,
		&sess.EndTime,
		&sess.Status,
		&sess.ClientNotes,
		&sess.CancellationReason,
		&sess.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sess.CreatedAt = createdAt.Time
	sess.UpdatedAt = updatedAt.Time

	return &sess, nil
}
