package request_free_time

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UseCase use case запроса произвольного времени у специалиста
//
// Доступен только когда scheduleEnforced=false. Пересечения с другими
// сессиями намеренно не проверяются: специалист разрешает конфликты вручную
// на этапе подтверждения.
type UseCase struct {
	sessionRepo    SessionRepository
	specialistRepo SpecialistRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	specialistRepo SpecialistRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:    sessionRepo,
		specialistRepo: specialistRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет запрос свободного времени
// Сессия создается в статусе pending и ждет подтверждения специалиста
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestFreeTime: specialist=%d, client=%d, range=[%s, %s)",
		req.SpecialistID, req.ClientID, req.Start, req.End)

	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RequestFreeTime: validation failed: %v", err)
		return nil, err
	}

	// Специалист мог ещё не настраивать расписание - заводим строку лениво,
	// политика по умолчанию scheduleEnforced=false
	if err := uc.specialistRepo.EnsureExists(ctx, req.SpecialistID); err != nil {
		uc.logger.Error("RequestFreeTime: failed to ensure specialist=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to ensure specialist: %v", ErrInternal, err)
	}

	// Флаг политики читается заново при каждой попытке бронирования,
	// чтобы не маршрутизировать запрос по устаревшему значению
	sp, err := uc.specialistRepo.GetByID(ctx, req.SpecialistID)
	if err != nil {
		uc.logger.Error("RequestFreeTime: failed to get specialist=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	if sp.ScheduleEnforced {
		uc.logger.Warn("RequestFreeTime: specialist=%d enforces schedule, free requests rejected",
			req.SpecialistID)
		return nil, ErrScheduleEnforced
	}

	sess := &domain.Session{
		SpecialistID: req.SpecialistID,
		ClientID:     &req.ClientID,
		StartTime:    req.Start,
		EndTime:      req.End,
		Status:       domain.StatusPending,
		ClientNotes:  req.Notes,
	}

	created, err := uc.sessionRepo.Create(ctx, sess)
	if err != nil {
		uc.logger.Error("RequestFreeTime: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
	}

	uc.logger.Info("RequestFreeTime: created pending session=%d for specialist=%d, client=%d",
		created.ID, req.SpecialistID, req.ClientID)

	return &Response{
		SessionID:    created.ID,
		SpecialistID: created.SpecialistID,
		ClientID:     req.ClientID,
		Start:        created.StartTime,
		End:          created.EndTime,
		Status:       string(created.Status),
		Notes:        created.ClientNotes,
		CreatedAt:    created.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.SpecialistID <= 0 {
		return fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidTimeRange)
	}

	if !req.Start.After(now) {
		return ErrStartInPast
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
