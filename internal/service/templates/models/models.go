package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модели

// CreateTemplateRequest запрос на создание шаблона расписания
type CreateTemplateRequest struct {
	SpecialistID        int64  `json:"specialistId"`
	DayOfWeek           int    `json:"dayOfWeek"` // 0=понедельник ... 6=воскресенье
	StartTime           string `json:"startTime"` // "09:00"
	EndTime             string `json:"endTime"`   // "18:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// Response модели

// TemplateResponse ответ с данными шаблона
type TemplateResponse struct {
	ID                  int64  `json:"id"`
	SpecialistID        int64  `json:"specialistId"`
	DayOfWeek           int    `json:"dayOfWeek"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	IsActive            bool   `json:"isActive"`
	CreatedAt           string `json:"createdAt"` // ISO 8601
}

// TemplateListResponse ответ со списком шаблонов
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// Методы конвертации

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(t *domain.ScheduleTemplate) *TemplateResponse {
	if t == nil {
		return nil
	}

	return &TemplateResponse{
		ID:                  t.ID,
		SpecialistID:        t.SpecialistID,
		DayOfWeek:           int(t.DayOfWeek),
		StartTime:           t.StartTime.String(),
		EndTime:             t.EndTime.String(),
		SlotDurationMinutes: t.SlotDurationMinutes,
		IsActive:            t.IsActive,
		CreatedAt:           t.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainTemplateList конвертирует список domain моделей в DTO
func FromDomainTemplateList(templates []*domain.ScheduleTemplate) *TemplateListResponse {
	resp := &TemplateListResponse{
		Templates: make([]TemplateResponse, 0, len(templates)),
	}

	for _, t := range templates {
		if tmplResp := FromDomainTemplate(t); tmplResp != nil {
			resp.Templates = append(resp.Templates, *tmplResp)
		}
	}

	return resp
}
