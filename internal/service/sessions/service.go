package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions/models"
)

// Service сервис жизненного цикла сессий
// Все переходы статусов проверяются по закрытой таблице переходов в domain:
// недопустимый переход отклоняется здесь, а не размазывается по вызывающим
type Service struct {
	sessionRepo SessionRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// GetByID получает сессию по ID
// Доступ имеют только участники сессии
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.SessionResponse, error) {
	s.logger.Info("GetSession: fetching session id=%d for user=%d", id, userID)

	sess, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sess.BelongsToSpecialist(userID) && !sess.BelongsToClient(userID) {
		s.logger.Warn("GetSession: access denied for user=%d to session id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainSession(sess), nil
}

// ListMy получает сессии пользователя в указанной роли
// Роль определяет сторону выборки: client - как клиент, specialist - как специалист
func (s *Service) ListMy(ctx context.Context, req *models.ListSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("ListSessions: user=%d, role=%s, status=%v", req.UserID, req.Role, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListSessions: invalid filter for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSessions: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListMy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSessions: successfully fetched %d sessions for user=%d", len(list), req.UserID)
	return models.FromDomainSessionList(list), nil
}

// Confirm подтверждает запрошенную сессию (pending -> confirmed)
// Доступно только специалисту, которому принадлежит сессия
func (s *Service) Confirm(ctx context.Context, id, userID int64) error {
	s.logger.Info("ConfirmSession: session=%d by user=%d", id, userID)
	return s.transition(ctx, id, userID, domain.StatusConfirmed, specialistOnly)
}

// Complete завершает подтвержденную сессию (confirmed -> completed)
// Доступно только специалисту, которому принадлежит сессия
// Завершение до времени начала не запрещается - это рекомендация, не инвариант
func (s *Service) Complete(ctx context.Context, id, userID int64) error {
	s.logger.Info("CompleteSession: session=%d by user=%d", id, userID)
	return s.transition(ctx, id, userID, domain.StatusCompleted, specialistOnly)
}

// Cancel отменяет сессию (pending/confirmed -> canceled)
// Доступно клиенту и специалисту - участникам сессии
// Слот, из которого создана сессия, обратно в available не возвращается
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelSessionRequest) error {
	s.logger.Info("CancelSession: session=%d by user=%d", id, req.UserID)

	if err := validateCancelReason(req.CancellationReason); err != nil {
		s.logger.Warn("CancelSession: invalid reason for session=%d: %v", id, err)
		return err
	}

	sess, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	if !sess.BelongsToSpecialist(req.UserID) && !sess.BelongsToClient(req.UserID) {
		s.logger.Warn("CancelSession: access denied for user=%d to session id=%d", req.UserID, id)
		return ErrAccessDenied
	}

	if !sess.Status.CanTransitionTo(domain.StatusCanceled) {
		s.logger.Warn("CancelSession: invalid transition %s -> %s for session=%d",
			sess.Status, domain.StatusCanceled, id)
		return transitionError(sess.Status, domain.StatusCanceled)
	}

	if err := s.sessionRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("CancelSession: repository error for session=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelSession: session=%d cancelled", id)
	return nil
}

type accessRule int

const (
	specialistOnly accessRule = iota
)

// transition выполняет переход статуса с проверкой прав и таблицы переходов
func (s *Service) transition(ctx context.Context, id, userID int64, target domain.SessionStatus, rule accessRule) error {
	sess, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	switch rule {
	case specialistOnly:
		if !sess.BelongsToSpecialist(userID) {
			s.logger.Warn("Transition: access denied for user=%d to session id=%d", userID, id)
			return ErrAccessDenied
		}
	}

	if !sess.Status.CanTransitionTo(target) {
		s.logger.Warn("Transition: invalid transition %s -> %s for session=%d", sess.Status, target, id)
		return transitionError(sess.Status, target)
	}

	if err := s.sessionRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Transition: repository error for session=%d: %v", id, err)
		return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Transition: session=%d is now %s", id, target)
	return nil
}

func (s *Service) fetch(ctx context.Context, id int64) (*domain.Session, error) {
	sess, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Failed to fetch session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: fetch - repository error: %v", ErrInternal, err)
	}
	return sess, nil
}

// transitionError строит ошибку с текущим и запрошенным статусами
func transitionError(from, to domain.SessionStatus) error {
	return fmt.Errorf("%w: from %q to %q", ErrInvalidTransition, from, to)
}

func validateCancelReason(reason *string) error {
	if reason != nil && len(*reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return nil
}
