package get_schedule_info

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
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

// Handle GET /api/v1/specialists/{specialistId}/schedule
// Публичный endpoint: клиент смотрит режим бронирования и свободные слоты
// специалиста до аутентификации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	specialistIDStr := vars["specialistId"]

	specialistID, err := strconv.ParseInt(specialistIDStr, 10, 64)
	if err != nil || specialistID <= 0 {
		h.logger.Warn("GET /specialists/{id}/schedule - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	result, err := h.service.GetScheduleInfo(r.Context(), specialistID)
	if err != nil {
		h.logger.Error("GET /specialists/{id}/schedule - Failed to get schedule info: specialist_id=%d, error=%v",
			specialistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /specialists/{id}/schedule - Schedule info retrieved: specialist_id=%d, enforced=%t, slots=%d",
		specialistID, result.ScheduleEnforced, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}
