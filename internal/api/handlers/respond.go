package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/inovalogics-art/booking-service/internal/api/validation"
)

// Envelope единый формат ответа API
type Envelope struct {
	Success   bool                    `json:"success"`
	Data      interface{}             `json:"data,omitempty"`
	Message   string                  `json:"message,omitempty"`
	Error     string                  `json:"error,omitempty"`
	Errors    []validation.FieldError `json:"errors,omitempty"`
	Timestamp string                  `json:"timestamp"`
}

// DecodeJSON декодирует тело запроса. Неизвестные поля игнорируются,
// чтобы не ломать старых клиентов при расширении схемы.
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON отправляет успешный ответ с данными
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeEnvelope(w, status, Envelope{
		Success: true,
		Data:    data,
	})
}

// RespondMessage отправляет успешный ответ с сообщением без данных
func RespondMessage(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, Envelope{
		Success: true,
		Message: message,
	})
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, Envelope{
		Success: false,
		Error:   message,
	})
}

// RespondBadRequest отправляет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized отправляет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondNotFound отправляет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict отправляет 409 Conflict
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondValidationErrors отправляет 422 со списком ошибок по полям
func RespondValidationErrors(w http.ResponseWriter, fieldErrors []validation.FieldError) {
	writeEnvelope(w, http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Error:   "validation failed",
		Errors:  fieldErrors,
	})
}

// RespondInternalError отправляет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	env.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Заголовки уже ушли, ошибку записи возвращать некуда
	_ = json.NewEncoder(w).Encode(env)
}

// HandleValidationError различает ошибки схемы (422 с полями) и прочие (400)
func HandleValidationError(w http.ResponseWriter, err error) {
	var fieldErrors validation.FieldErrors
	if errors.As(err, &fieldErrors) {
		RespondValidationErrors(w, fieldErrors)
		return
	}
	RespondBadRequest(w, err.Error())
}
