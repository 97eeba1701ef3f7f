package set_schedule_enforced

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется аутентификация"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/specialists/{specialistId}/schedule-enforced
// Переключение флага влияет только на будущие попытки бронирования,
// существующие сессии и слоты не меняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /specialists/{id}/schedule-enforced - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	specialistIDStr := vars["specialistId"]

	specialistID, err := strconv.ParseInt(specialistIDStr, 10, 64)
	if err != nil || specialistID <= 0 {
		h.logger.Warn("PUT /specialists/{id}/schedule-enforced - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	var req SetScheduleEnforcedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /specialists/{id}/schedule-enforced - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.SetScheduleEnforced(r.Context(), specialistID, userID, req.ScheduleEnforced)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /specialists/{id}/schedule-enforced - Access denied: specialist_id=%d, user_id=%d",
				specialistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /specialists/{id}/schedule-enforced - Failed to update flag: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /specialists/{id}/schedule-enforced - Flag updated successfully: specialist_id=%d, enforced=%t",
		specialistID, req.ScheduleEnforced)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
