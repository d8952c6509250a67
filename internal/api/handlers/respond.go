package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Коды ошибок в теле ответа
const (
	CodeInvalidRequest  = "invalid_request"
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeSlotSyncFailure = "slot_sync_failure"
	CodeInternalError   = "internal_error"
)

// ErrorResponse стандартное тело ошибки
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// DecodeJSON декодирует тело запроса, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет стандартное тело ошибки
func RespondError(w http.ResponseWriter, status int, code, detail string) {
	RespondJSON(w, status, ErrorResponse{Error: code, Detail: detail})
}

// RespondBadRequest 400 с кодом invalid_request
func RespondBadRequest(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusBadRequest, CodeInvalidRequest, detail)
}

// RespondUnauthorized 401 с кодом unauthorized
func RespondUnauthorized(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, detail)
}

// RespondForbidden 403 с кодом forbidden
func RespondForbidden(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, detail)
}

// RespondNotFound 404 с кодом not_found
func RespondNotFound(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, detail)
}

// RespondInternalError 500 с кодом internal_error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, "внутренняя ошибка сервиса")
}
