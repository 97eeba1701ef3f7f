package generate_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	generateSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidInput       = "некорректный диапазон генерации"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/generate
// Повторный вызов на том же диапазоне безопасен: уже существующие слоты
// пропускаются, generatedCount отражает только реально вставленные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/generate - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(specialistID)
	if err != nil {
		h.logger.Warn("POST /slots/generate - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /slots/generate - Invalid input: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots/generate - Failed to generate slots: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/generate - Slots generated successfully: specialist_id=%d, count=%d",
		specialistID, result.GeneratedCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
