package delete_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/templates"
)

const (
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgUnauthorized      = "требуется аутентификация"
	msgNotFound          = "шаблон не найден"
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

// Handle DELETE /api/v1/templates/{templateId}
// Удаление шаблона не трогает уже сгенерированные слоты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /templates/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	templateIDStr := vars["templateId"]

	templateID, err := strconv.ParseInt(templateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	err = h.service.Delete(r.Context(), templateID, specialistID)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("DELETE /templates/{id} - Template not found: template_id=%d, specialist_id=%d",
				templateID, specialistID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /templates/{id} - Failed to delete template: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /templates/{id} - Template deleted successfully: template_id=%d, specialist_id=%d",
		templateID, specialistID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
