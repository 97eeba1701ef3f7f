package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
)

// UseCase use case бронирования слота доступности
//
// Защита от двойного бронирования - условный UPDATE статуса слота в хранилище:
// из N конкурентных попыток ровно одна переводит слот в booked, остальные
// получают ErrSlotNotAvailable. Переворот слота и создание сессии выполняются
// в одной транзакции, так что неудача любого шага не оставляет следов.
type UseCase struct {
	slotRepo    SlotRepository
	sessionRepo SessionRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет бронирование слота
// Сессия создается сразу в статусе confirmed: существование слота уже
// означает доступность специалиста, отдельное подтверждение не требуется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%d, client=%d", req.SlotID, req.ClientID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Session

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Атомарный перевод available -> booked
		booked, err := uc.slotRepo.MarkBooked(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				return uc.classifyUnavailable(txCtx, req.SlotID)
			}
			uc.logger.Error("BookSlot: failed to mark slot=%d booked: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		// Сессия наследует точный временной диапазон слота
		sess := &domain.Session{
			SpecialistID: booked.SpecialistID,
			ClientID:     &req.ClientID,
			SlotID:       &booked.ID,
			StartTime:    booked.StartTime,
			EndTime:      booked.EndTime,
			Status:       domain.StatusConfirmed,
		}

		created, err := uc.sessionRepo.Create(txCtx, sess)
		if err != nil {
			uc.logger.Error("BookSlot: failed to create session for slot=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully booked slot=%d, session=%d, client=%d",
		req.SlotID, result.ID, req.ClientID)

	return &Response{
		SessionID:    result.ID,
		SpecialistID: result.SpecialistID,
		ClientID:     req.ClientID,
		SlotID:       req.SlotID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}

// classifyUnavailable различает "слот не существует" и "слот уже занят"
// Проигравшему гонку важно получить именно ErrSlotNotAvailable, чтобы
// вызывающий мог обновить список и выбрать другой слот
func (uc *UseCase) classifyUnavailable(ctx context.Context, slotID int64) error {
	_, err := uc.slotRepo.GetByID(ctx, slotID)
	if errors.Is(err, slotRepo.ErrSlotNotFound) {
		uc.logger.Warn("BookSlot: slot=%d not found", slotID)
		return ErrSlotNotFound
	}
	if err != nil {
		uc.logger.Error("BookSlot: failed to classify slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: failed to classify slot state: %v", ErrInternal, err)
	}

	uc.logger.Warn("BookSlot: slot=%d already booked", slotID)
	return ErrSlotNotAvailable
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	return nil
}
