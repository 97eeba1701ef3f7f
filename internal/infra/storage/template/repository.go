package template

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

// Repository репозиторий для работы с шаблонами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый шаблон расписания
func (r *Repository) Create(ctx context.Context, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_templates").
		Columns(
			"specialist_id",
			"day_of_week",
			"start_time",
			"end_time",
			"slot_duration_minutes",
			"is_active",
		).
		Values(
			tmpl.SpecialistID,
			int(tmpl.DayOfWeek),
			tmpl.StartTime,
			tmpl.EndTime,
			tmpl.SlotDurationMinutes,
			tmpl.IsActive,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&tmpl.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tmpl.CreatedAt = createdAt.Time

	return tmpl, nil
}

// GetByID получает шаблон по ID с проверкой владельца
func (r *Repository) GetByID(ctx context.Context, id, specialistID int64) (*domain.ScheduleTemplate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"specialist_id",
		"day_of_week",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"is_active",
		"created_at",
	).
		From("schedule_templates").
		Where(squirrel.Eq{"id": id, "specialist_id": specialistID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tmpl, err := scanTemplate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan template: %v", ErrScanRow, err)
	}

	return tmpl, nil
}

// ListBySpecialist получает все шаблоны специалиста
// При onlyActive=true возвращает только активные шаблоны
func (r *Repository) ListBySpecialist(ctx context.Context, specialistID int64, onlyActive bool) ([]*domain.ScheduleTemplate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"specialist_id",
		"day_of_week",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"is_active",
		"created_at",
	).
		From("schedule_templates").
		Where(squirrel.Eq{"specialist_id": specialistID}).
		OrderBy("day_of_week ASC, start_time ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make([]*domain.ScheduleTemplate, 0)
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySpecialist - scan row: %v", ErrScanRow, err)
		}
		templates = append(templates, tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialist - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}

// SetActive переключает флаг активности шаблона
// Деактивация не трогает уже сгенерированные слоты
func (r *Repository) SetActive(ctx context.Context, id, specialistID int64, active bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_templates").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id, "specialist_id": specialistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// Delete удаляет шаблон
// Удаление шаблона не удаляет уже сгенерированные по нему слоты
func (r *Repository) Delete(ctx context.Context, id, specialistID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_templates").
		Where(squirrel.Eq{"id": id, "specialist_id": specialistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTemplate сканирует одну строку в доменную модель
func scanTemplate(row rowScanner) (*domain.ScheduleTemplate, error) {
	var tmpl domain.ScheduleTemplate
	var dayOfWeek int
	var createdAt sql.NullTime

	err := row.Scan(
		&tmpl.ID,
		&tmpl.SpecialistID,
		&dayOfWeek,
		&tmpl.StartTime,
		&tmpl.EndTime,
		&tmpl.SlotDurationMinutes,
		&tmpl.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	tmpl.DayOfWeek = domain.Weekday(dayOfWeek)
	tmpl.CreatedAt = createdAt.Time

	return &tmpl, nil
}
