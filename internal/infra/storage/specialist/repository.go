package specialist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

// Repository репозиторий для работы с профилями специалистов
// Профиль хранит только политику расписания; учетные данные живут
// во внешней системе аккаунтов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureExists создает строку специалиста, если её ещё нет
// Идентификаторы приходят из внешней системы аккаунтов, поэтому строка
// заводится лениво при первой записи шаблона или переключении флага
func (r *Repository) EnsureExists(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("specialists").
		Columns("id").
		Values(id).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: EnsureExists - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureExists - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает профиль специалиста по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Specialist, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"schedule_enforced",
		"created_at",
		"updated_at",
	).
		From("specialists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var sp domain.Specialist
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sp.ID,
		&sp.ScheduleEnforced,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSpecialistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan specialist: %v", ErrScanRow, err)
	}

	sp.CreatedAt = createdAt.Time
	sp.UpdatedAt = updatedAt.Time

	return &sp, nil
}

// SetScheduleEnforced устанавливает флаг политики бронирования
// Upsert: строка специалиста заводится при первом обращении
// Переключение флага не трогает существующие слоты и сессии
func (r *Repository) SetScheduleEnforced(ctx context.Context, id int64, enforced bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("specialists").
		Columns("id", "schedule_enforced").
		Values(id, enforced).
		Suffix("ON CONFLICT (id) DO UPDATE SET schedule_enforced = EXCLUDED.schedule_enforced, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetScheduleEnforced - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetScheduleEnforced - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
