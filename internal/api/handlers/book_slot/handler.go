package book_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	bookSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_slot"
)

const (
	msgInvalidSlotID   = "некорректный ID слота"
	msgUnauthorized    = "требуется аутентификация"
	msgSlotNotFound    = "слот не найден"
	msgSlotUnavailable = "слот уже забронирован"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/book
// 409 означает проигрыш гонки за слот: клиенту нужно обновить список
// доступных слотов и выбрать другой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/{id}/book - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/book - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookSlot.Request{
		SlotID:   slotID,
		ClientID: clientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/book - Slot not found: slot_id=%d, client_id=%d",
				slotID, clientID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /slots/{id}/book - Slot not available: slot_id=%d, client_id=%d",
				slotID, clientID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /slots/{id}/book - Failed to book slot: slot_id=%d, client_id=%d, error=%v",
				slotID, clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/book - Slot booked successfully: slot_id=%d, session_id=%d, client_id=%d",
		slotID, result.SessionID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
