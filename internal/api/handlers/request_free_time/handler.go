package request_free_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	requestFreeTime "github.com/m04kA/SMC-ScheduleService/internal/usecase/request_free_time"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается ISO 8601"
	msgUnauthorized       = "требуется аутентификация"
	msgScheduleEnforced   = "специалист принимает запись только по слотам расписания"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgStartInPast        = "время начала уже прошло"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase RequestFreeTimeUseCase
	logger  Logger
}

func NewHandler(useCase RequestFreeTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/requests - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req RequestFreeTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /sessions/requests - Failed to parse time range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestFreeTime.ErrScheduleEnforced):
			h.logger.Warn("POST /sessions/requests - Schedule enforced: specialist_id=%d, client_id=%d",
				req.SpecialistID, clientID)
			handlers.RespondError(w, http.StatusConflict, msgScheduleEnforced)

		case errors.Is(err, requestFreeTime.ErrInvalidTimeRange):
			h.logger.Warn("POST /sessions/requests - Invalid time range: specialist_id=%d, client_id=%d",
				req.SpecialistID, clientID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, requestFreeTime.ErrStartInPast):
			h.logger.Warn("POST /sessions/requests - Start in past: specialist_id=%d, client_id=%d",
				req.SpecialistID, clientID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, requestFreeTime.ErrInvalidInput):
			h.logger.Warn("POST /sessions/requests - Invalid input: specialist_id=%d, client_id=%d, error=%v",
				req.SpecialistID, clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions/requests - Failed to create request: specialist_id=%d, client_id=%d, error=%v",
				req.SpecialistID, clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/requests - Request created successfully: session_id=%d, specialist_id=%d, client_id=%d",
		result.SessionID, req.SpecialistID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
