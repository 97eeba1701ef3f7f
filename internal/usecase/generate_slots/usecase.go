package generate_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UseCase use case генерации слотов доступности из шаблонов расписания
type UseCase struct {
	templateRepo TemplateRepository
	slotRepo     SlotRepository
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - таймзона, в которой wall-clock время шаблонов превращается
// в абсолютные моменты слотов
func NewUseCase(
	templateRepo TemplateRepository,
	slotRepo SlotRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		slotRepo:     slotRepo,
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет генерацию слотов для специалиста на диапазон дат [from, to)
//
// Операция безопасна для повторного запуска: кандидаты, пересекающиеся с уже
// существующими слотами, отбрасываются до вставки, а гонку двух параллельных
// запусков закрывает constraint на (specialist_id, диапазон) в хранилище -
// проигравший кандидат просто пропускается при вставке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: specialist=%d, range=[%s, %s)",
		req.SpecialistID, req.FromDate.Format(domain.DateFormat), req.ToDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// Пустой или перевернутый диапазон - не ошибка, просто ноль вставок
	if !req.ToDate.After(req.FromDate) {
		uc.logger.Info("GenerateSlots: empty range for specialist=%d, nothing to do", req.SpecialistID)
		return &Response{GeneratedCount: 0}, nil
	}

	templates, err := uc.templateRepo.ListBySpecialist(ctx, req.SpecialistID, true)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to load templates for specialist=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to load templates: %v", ErrInternal, err)
	}

	if len(templates) == 0 {
		uc.logger.Info("GenerateSlots: specialist=%d has no active templates", req.SpecialistID)
		return &Response{GeneratedCount: 0}, nil
	}

	from := dateOnly(req.FromDate, uc.location)
	to := dateOnly(req.ToDate, uc.location)

	existing, err := uc.slotRepo.ListRanges(ctx, req.SpecialistID, from, to)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to load existing slots for specialist=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to load existing slots: %v", ErrInternal, err)
	}

	candidates, err := expandTemplates(templates, existing, from, to, uc.location)
	if err != nil {
		uc.logger.Error("GenerateSlots: expansion failed for specialist=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: expansion failed: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		uc.logger.Info("GenerateSlots: no new slots for specialist=%d (already generated)", req.SpecialistID)
		return &Response{GeneratedCount: 0}, nil
	}

	slots := make([]*domain.AvailabilitySlot, 0, len(candidates))
	for _, r := range candidates {
		slots = append(slots, &domain.AvailabilitySlot{
			SpecialistID: req.SpecialistID,
			StartTime:    r.Start,
			EndTime:      r.End,
			Status:       domain.SlotStatusAvailable,
		})
	}

	inserted, err := uc.slotRepo.CreateBatch(ctx, slots)
	if err != nil {
		uc.logger.Error("GenerateSlots: insert failed for specialist=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: insert failed: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateSlots: specialist=%d, %d candidates, %d inserted",
		req.SpecialistID, len(candidates), inserted)

	return &Response{GeneratedCount: inserted}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpecialistID <= 0 {
		return fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	if req.FromDate.IsZero() {
		return fmt.Errorf("%w: fromDate is required", ErrInvalidInput)
	}

	if req.ToDate.IsZero() {
		return fmt.Errorf("%w: toDate is required", ErrInvalidInput)
	}

	return nil
}
