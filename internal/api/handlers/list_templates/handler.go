package list_templates

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
)

const (
	msgUnauthorized = "требуется аутентификация"
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

// Handle GET /api/v1/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /templates - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), specialistID)
	if err != nil {
		h.logger.Error("GET /templates - Failed to list templates: specialist_id=%d, error=%v",
			specialistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /templates - Templates retrieved successfully: specialist_id=%d, count=%d",
		specialistID, len(result.Templates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
