package schedule

import (
	"context"
	"errors"
	"fmt"

	specialistRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/specialist"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

// Service сервис информации о расписании и политике бронирования
type Service struct {
	specialistRepo SpecialistRepository
	slotRepo       SlotRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	specialistRepo SpecialistRepository,
	slotRepo SlotRepository,
	logger Logger,
) *Service {
	return &Service{
		specialistRepo: specialistRepo,
		slotRepo:       slotRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// GetScheduleInfo возвращает политику бронирования специалиста и список
// будущих свободных слотов
// Неизвестный специалист (ещё не настраивал расписание) трактуется как
// scheduleEnforced=false с пустой доступностью
func (s *Service) GetScheduleInfo(ctx context.Context, specialistID int64) (*models.ScheduleInfoResponse, error) {
	s.logger.Info("GetScheduleInfo: specialist=%d", specialistID)

	if specialistID <= 0 {
		return nil, fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	resp := &models.ScheduleInfoResponse{
		SpecialistID: specialistID,
		Availability: []models.SlotResponse{},
	}

	sp, err := s.specialistRepo.GetByID(ctx, specialistID)
	if err != nil {
		if errors.Is(err, specialistRepo.ErrSpecialistNotFound) {
			s.logger.Info("GetScheduleInfo: specialist=%d has no schedule profile yet", specialistID)
			return resp, nil
		}
		s.logger.Error("GetScheduleInfo: repository error for specialist=%d: %v", specialistID, err)
		return nil, fmt.Errorf("%w: GetScheduleInfo - repository error: %v", ErrInternal, err)
	}

	resp.ScheduleEnforced = sp.ScheduleEnforced

	slots, err := s.slotRepo.ListAvailable(ctx, specialistID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("GetScheduleInfo: failed to list slots for specialist=%d: %v", specialistID, err)
		return nil, fmt.Errorf("%w: GetScheduleInfo - list slots: %v", ErrInternal, err)
	}

	resp.Availability = models.FromDomainSlotList(slots)

	s.logger.Info("GetScheduleInfo: specialist=%d, enforced=%t, %d available slots",
		specialistID, resp.ScheduleEnforced, len(resp.Availability))
	return resp, nil
}

// SetScheduleEnforced переключает политику бронирования специалиста
// Менять флаг может только сам специалист
// Существующие слоты и сессии не затрагиваются - меняется только маршрутизация
// будущих попыток бронирования
func (s *Service) SetScheduleEnforced(ctx context.Context, specialistID, userID int64, enforced bool) error {
	s.logger.Info("SetScheduleEnforced: specialist=%d, user=%d, enforced=%t", specialistID, userID, enforced)

	if specialistID <= 0 {
		return fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	if specialistID != userID {
		s.logger.Warn("SetScheduleEnforced: user=%d is not specialist=%d", userID, specialistID)
		return ErrAccessDenied
	}

	if err := s.specialistRepo.SetScheduleEnforced(ctx, specialistID, enforced); err != nil {
		s.logger.Error("SetScheduleEnforced: repository error for specialist=%d: %v", specialistID, err)
		return fmt.Errorf("%w: SetScheduleEnforced - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetScheduleEnforced: specialist=%d scheduleEnforced=%t", specialistID, enforced)
	return nil
}
