package request_free_time

import (
	"time"

	requestFreeTime "github.com/m04kA/SMC-ScheduleService/internal/usecase/request_free_time"
)

// RequestFreeTimeRequest HTTP request model
type RequestFreeTimeRequest struct {
	SpecialistID int64   `json:"specialistId"`
	Start        string  `json:"start"` // ISO 8601, "2026-09-01T10:00:00+03:00"
	End          string  `json:"end"`   // ISO 8601
	Notes        *string `json:"notes,omitempty"`
}

// RequestFreeTimeResponse HTTP response model
type RequestFreeTimeResponse struct {
	SessionID    int64   `json:"sessionId"`
	SpecialistID int64   `json:"specialistId"`
	ClientID     int64   `json:"clientId"`
	Start        string  `json:"start"`  // ISO 8601
	End          string  `json:"end"`    // ISO 8601
	Status       string  `json:"status"` // pending
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestFreeTimeRequest) ToUseCaseRequest(clientID int64) (*requestFreeTime.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &requestFreeTime.Request{
		SpecialistID: r.SpecialistID,
		ClientID:     clientID,
		Start:        start,
		End:          end,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestFreeTime.Response) *RequestFreeTimeResponse {
	return &RequestFreeTimeResponse{
		SessionID:    resp.SessionID,
		SpecialistID: resp.SpecialistID,
		ClientID:     resp.ClientID,
		Start:        resp.Start.Format(time.RFC3339),
		End:          resp.End.Format(time.RFC3339),
		Status:       resp.Status,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
