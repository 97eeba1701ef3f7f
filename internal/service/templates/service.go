package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	templateRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
	"github.com/m04kA/SMC-ScheduleService/internal/service/templates/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Service сервис для работы с шаблонами расписания
type Service struct {
	templateRepo   TemplateRepository
	specialistRepo SpecialistRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(
	templateRepo TemplateRepository,
	specialistRepo SpecialistRepository,
	logger Logger,
) *Service {
	return &Service{
		templateRepo:   templateRepo,
		specialistRepo: specialistRepo,
		logger:         logger,
	}
}

// Create создает шаблон расписания специалиста
// Генерация слотов - отдельный явный шаг, создание шаблона её не запускает
func (s *Service) Create(ctx context.Context, req *models.CreateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("CreateTemplate: specialist=%d, day=%d, window=%s-%s, duration=%d",
		req.SpecialistID, req.DayOfWeek, req.StartTime, req.EndTime, req.SlotDurationMinutes)

	tmpl, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("CreateTemplate: validation failed for specialist=%d: %v", req.SpecialistID, err)
		return nil, err
	}

	// Строка специалиста заводится лениво при первой записи
	if err := s.specialistRepo.EnsureExists(ctx, req.SpecialistID); err != nil {
		s.logger.Error("CreateTemplate: failed to ensure specialist=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: Create - ensure specialist: %v", ErrInternal, err)
	}

	created, err := s.templateRepo.Create(ctx, tmpl)
	if err != nil {
		s.logger.Error("CreateTemplate: repository error for specialist=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTemplate: successfully created template id=%d for specialist=%d",
		created.ID, req.SpecialistID)
	return models.FromDomainTemplate(created), nil
}

// List получает все шаблоны специалиста
func (s *Service) List(ctx context.Context, specialistID int64) (*models.TemplateListResponse, error) {
	s.logger.Info("ListTemplates: fetching templates for specialist=%d", specialistID)

	templates, err := s.templateRepo.ListBySpecialist(ctx, specialistID, false)
	if err != nil {
		s.logger.Error("ListTemplates: repository error for specialist=%d: %v", specialistID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTemplates: successfully fetched %d templates for specialist=%d",
		len(templates), specialistID)
	return models.FromDomainTemplateList(templates), nil
}

// SetActive переключает флаг активности шаблона
// Уже сгенерированные слоты не затрагиваются - меняется только будущая генерация
func (s *Service) SetActive(ctx context.Context, id, specialistID int64, active bool) error {
	s.logger.Info("SetTemplateActive: template=%d, specialist=%d, active=%t", id, specialistID, active)

	if err := s.templateRepo.SetActive(ctx, id, specialistID, active); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("SetTemplateActive: template=%d not found for specialist=%d", id, specialistID)
			return ErrTemplateNotFound
		}
		s.logger.Error("SetTemplateActive: repository error for template=%d: %v", id, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetTemplateActive: template=%d is now active=%t", id, active)
	return nil
}

// Delete удаляет шаблон специалиста
// Уже сгенерированные по шаблону слоты остаются
func (s *Service) Delete(ctx context.Context, id, specialistID int64) error {
	s.logger.Info("DeleteTemplate: template=%d, specialist=%d", id, specialistID)

	if err := s.templateRepo.Delete(ctx, id, specialistID); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("DeleteTemplate: template=%d not found for specialist=%d", id, specialistID)
			return ErrTemplateNotFound
		}
		s.logger.Error("DeleteTemplate: repository error for template=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTemplate: template=%d deleted", id)
	return nil
}

// validateCreateRequest валидирует запрос и собирает доменную модель
func validateCreateRequest(req *models.CreateTemplateRequest) (*domain.ScheduleTemplate, error) {
	if req.SpecialistID <= 0 {
		return nil, fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	day := domain.Weekday(req.DayOfWeek)
	if !day.IsValid() {
		return nil, fmt.Errorf("%w: dayOfWeek must be in 0..6", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidTimeRange, start, end)
	}

	if !domain.IsAllowedSlotDuration(req.SlotDurationMinutes) {
		return nil, fmt.Errorf("%w: %d minutes (allowed: %v)",
			ErrUnsupportedDuration, req.SlotDurationMinutes, domain.AllowedSlotDurations)
	}

	return &domain.ScheduleTemplate{
		SpecialistID:        req.SpecialistID,
		DayOfWeek:           day,
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: req.SlotDurationMinutes,
		IsActive:            true,
	}, nil
}
