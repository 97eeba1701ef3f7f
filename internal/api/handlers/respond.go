package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrorResponse стандартный формат ошибки API
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса в v
// Неизвестные поля считаются ошибкой клиента
func DecodeJSON(r *http.Request, v interface{}) error {
	defer io.Copy(io.Discard, r.Body)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	// Второй Decode ловит мусор после JSON объекта
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after JSON body")
	}

	return nil
}

// RespondJSON пишет ответ с указанным статусом и JSON телом
// При body == nil тело не пишется
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	// Ошибку кодирования уже некому вернуть - статус отправлен
	_ = json.NewEncoder(w).Encode(body)
}

// RespondError пишет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// RespondBadRequest пишет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

// RespondUnauthorized пишет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusUnauthorized, msg)
}

// RespondForbidden пишет 403 Forbidden
func RespondForbidden(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusForbidden, msg)
}

// RespondNotFound пишет 404 Not Found
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

// RespondInternalError пишет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
}
