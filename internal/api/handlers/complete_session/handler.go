package complete_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

const (
	msgInvalidSessionID  = "некорректный ID сессии"
	msgUnauthorized      = "требуется аутентификация"
	msgNotFound          = "сессия не найдена"
	msgForbidden         = "доступ запрещен"
	msgInvalidTransition = "сессия не может быть завершена из текущего статуса"
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

// Handle PATCH /api/v1/sessions/{sessionId}/complete
// Завершать может только специалист сессии, и только из confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /sessions/{id}/complete - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	sessionIDStr := vars["sessionId"]

	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/complete - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	err = h.service.Complete(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/complete - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("PATCH /sessions/{id}/complete - Access denied: session_id=%d, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PATCH /sessions/{id}/complete - Invalid transition: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /sessions/{id}/complete - Failed to complete session: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/complete - Session completed successfully: session_id=%d, user_id=%d",
		sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
