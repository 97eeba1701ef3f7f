package cancel_session

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgNotFound           = "сессия не найдена"
	msgForbidden          = "доступ запрещен"
	msgCannotCancel       = "сессия не может быть отменена из текущего статуса"
	msgInvalidInput       = "некорректные данные отмены"
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

// Handle PATCH /api/v1/sessions/{sessionId}/cancel
// Отменять могут оба участника сессии. Слот обратно не освобождается:
// специалист возвращает время в продажу повторной генерацией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	sessionIDStr := vars["sessionId"]

	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	// Тело опционально: отмена без причины - валидный случай
	var req CancelSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), sessionID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Access denied: session_id=%d, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Cannot cancel: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid input: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /sessions/{id}/cancel - Failed to cancel session: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/cancel - Session cancelled successfully: session_id=%d, user_id=%d",
		sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
