package book_slot

import (
	"time"

	bookSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_slot"
)

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	SessionID    int64  `json:"sessionId"`
	SpecialistID int64  `json:"specialistId"`
	ClientID     int64  `json:"clientId"`
	SlotID       int64  `json:"slotId"`
	StartTime    string `json:"startTime"` // ISO 8601
	EndTime      string `json:"endTime"`   // ISO 8601
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		SessionID:    resp.SessionID,
		SpecialistID: resp.SpecialistID,
		ClientID:     resp.ClientID,
		SlotID:       resp.SlotID,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
