package set_template_active

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
	msgInvalidTemplateID  = "некорректный ID шаблона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgNotFound           = "шаблон не найден"
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

// Handle PATCH /api/v1/templates/{templateId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /templates/{id}/active - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	templateIDStr := vars["templateId"]

	templateID, err := strconv.ParseInt(templateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /templates/{id}/active - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	var req SetTemplateActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /templates/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.SetActive(r.Context(), templateID, specialistID, req.IsActive)
	if err != nil {
		switch {
		// Чужой шаблон неотличим от несуществующего
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("PATCH /templates/{id}/active - Template not found: template_id=%d, specialist_id=%d",
				templateID, specialistID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /templates/{id}/active - Failed to update template: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /templates/{id}/active - Template updated successfully: template_id=%d, is_active=%t",
		templateID, req.IsActive)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
