package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Роли участников сессии
const (
	RoleClient     = "client"
	RoleSpecialist = "specialist"
)

// ErrInvalidRole возвращается при неизвестной роли
var ErrInvalidRole = errors.New("invalid role")

// ErrInvalidStatus возвращается при некорректном статусе
var ErrInvalidStatus = errors.New("invalid session status")

// Request модели

// ListSessionsRequest запрос на получение сессий пользователя
type ListSessionsRequest struct {
	UserID int64   `json:"userId"`
	Role   string  `json:"role"`             // client | specialist
	Status *string `json:"status,omitempty"` // фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSessionsRequest) ToDomainFilter() (domain.SessionFilter, error) {
	var filter domain.SessionFilter

	switch r.Role {
	case RoleClient:
		filter.ClientID = &r.UserID
	case RoleSpecialist:
		filter.SpecialistID = &r.UserID
	default:
		return filter, ErrInvalidRole
	}

	if r.Status != nil {
		status, err := ToDomainSessionStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelSessionRequest запрос на отмену сессии
type CancelSessionRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Response модели

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	ID           int64   `json:"id"`
	SpecialistID int64   `json:"specialistId"`
	ClientID     *int64  `json:"clientId,omitempty"`
	SlotID       *int64  `json:"slotId,omitempty"`
	StartTime    string  `json:"startTime"` // ISO 8601
	EndTime      string  `json:"endTime"`   // ISO 8601
	Status       string  `json:"status"`
	ClientNotes  *string `json:"clientNotes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionListResponse ответ со списком сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// Методы конвертации

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}

	resp := &SessionResponse{
		ID:                 s.ID,
		SpecialistID:       s.SpecialistID,
		ClientID:           s.ClientID,
		SlotID:             s.SlotID,
		StartTime:          s.StartTime.Format(time.RFC3339),
		EndTime:            s.EndTime.Format(time.RFC3339),
		Status:             string(s.Status),
		ClientNotes:        s.ClientNotes,
		CancellationReason: s.CancellationReason,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	if s.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(s.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainSessionList конвертирует список domain моделей в DTO
func FromDomainSessionList(sessions []*domain.Session) *SessionListResponse {
	resp := &SessionListResponse{
		Sessions: make([]SessionResponse, 0, len(sessions)),
	}

	for _, s := range sessions {
		if sessResp := FromDomainSession(s); sessResp != nil {
			resp.Sessions = append(resp.Sessions, *sessResp)
		}
	}

	return resp
}

// ToDomainSessionStatus конвертирует строку в domain.SessionStatus с валидацией
func ToDomainSessionStatus(status string) (domain.SessionStatus, error) {
	s := domain.SessionStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
