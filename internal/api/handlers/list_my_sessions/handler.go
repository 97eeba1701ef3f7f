package list_my_sessions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions/models"
)

const (
	msgUnauthorized   = "требуется аутентификация"
	msgInvalidFilters = "некорректные параметры фильтрации, role должен быть client или specialist"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions?role=client|specialist&status=pending
// Один пользователь может выступать в обеих ролях, поэтому роль обязательна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	role := r.URL.Query().Get("role")

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	serviceReq := &models.ListSessionsRequest{
		UserID: userID,
		Role:   role,
		Status: statusPtr,
	}

	result, err := h.service.ListMy(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /sessions - Invalid filters: user_id=%d, role=%q, status=%q",
				userID, role, status)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		default:
			h.logger.Error("GET /sessions - Failed to list sessions: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions - Sessions retrieved successfully: user_id=%d, role=%s, count=%d",
		userID, role, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
