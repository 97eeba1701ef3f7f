package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	generateSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	FromDate string `json:"fromDate"` // "2026-09-01", включительно
	ToDate   string `json:"toDate"`   // "2026-09-15", исключительно
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	GeneratedCount int `json:"generatedCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest(specialistID int64) (*generateSlots.Request, error) {
	fromDate, err := time.Parse(domain.DateFormat, r.FromDate)
	if err != nil {
		return nil, err
	}

	toDate, err := time.Parse(domain.DateFormat, r.ToDate)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		SpecialistID: specialistID,
		FromDate:     fromDate,
		ToDate:       toDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		GeneratedCount: resp.GeneratedCount,
	}
}
