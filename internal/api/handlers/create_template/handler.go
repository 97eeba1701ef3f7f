package create_template

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/templates"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется аутентификация"
	msgInvalidInput        = "некорректные данные шаблона"
	msgInvalidTimeRange    = "время начала должно быть раньше времени окончания"
	msgUnsupportedDuration = "неподдерживаемая длительность слота"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /templates - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(specialistID))
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrInvalidTimeRange):
			h.logger.Warn("POST /templates - Invalid time range: specialist_id=%d, start=%s, end=%s",
				specialistID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, templates.ErrUnsupportedDuration):
			h.logger.Warn("POST /templates - Unsupported duration: specialist_id=%d, duration=%d",
				specialistID, req.SlotDurationMinutes)
			handlers.RespondBadRequest(w, msgUnsupportedDuration)

		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("POST /templates - Invalid input: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /templates - Failed to create template: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /templates - Template created successfully: template_id=%d, specialist_id=%d",
		result.ID, specialistID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
