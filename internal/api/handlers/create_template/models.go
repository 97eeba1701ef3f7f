package create_template

import (
	"github.com/m04kA/SMC-ScheduleService/internal/service/templates/models"
)

// CreateTemplateRequest HTTP request model
type CreateTemplateRequest struct {
	DayOfWeek           int    `json:"dayOfWeek"` // 0=понедельник ... 6=воскресенье
	StartTime           string `json:"startTime"` // "09:00"
	EndTime             string `json:"endTime"`   // "18:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// SpecialistID берется из контекста аутентификации, а не из тела
func (r *CreateTemplateRequest) ToServiceRequest(specialistID int64) *models.CreateTemplateRequest {
	return &models.CreateTemplateRequest{
		SpecialistID:        specialistID,
		DayOfWeek:           r.DayOfWeek,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}
