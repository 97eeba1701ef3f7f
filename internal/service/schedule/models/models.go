package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotResponse ответ с данными слота доступности
type SlotResponse struct {
	ID           int64  `json:"id"`
	SpecialistID int64  `json:"specialistId"`
	StartTime    string `json:"startTime"` // ISO 8601
	EndTime      string `json:"endTime"`   // ISO 8601
	Status       string `json:"status"`
}

// ScheduleInfoResponse информация о расписании специалиста
// Availability содержит только будущие свободные слоты
type ScheduleInfoResponse struct {
	SpecialistID     int64          `json:"specialistId"`
	ScheduleEnforced bool           `json:"scheduleEnforced"`
	Availability     []SlotResponse `json:"availability"`
}

// FromDomainSlot конвертирует domain модель слота в DTO
func FromDomainSlot(s *domain.AvailabilitySlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:           s.ID,
		SpecialistID: s.SpecialistID,
		StartTime:    s.StartTime.Format(time.RFC3339),
		EndTime:      s.EndTime.Format(time.RFC3339),
		Status:       string(s.Status),
	}
}

// FromDomainSlotList конвертирует список слотов в DTO
func FromDomainSlotList(slots []*domain.AvailabilitySlot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		if slotResp := FromDomainSlot(s); slotResp != nil {
			result = append(result, *slotResp)
		}
	}
	return result
}
