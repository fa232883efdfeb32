package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
)

// APIResponse is the envelope of every JSON body the service writes.
type APIResponse struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorResponse maps an application error to its status and envelope.
func ErrorResponse(err error) (int, APIResponse) {
	detail := &ErrorDetail{
		Code:    application.ToErrorCode(err),
		Message: err.Error(),
	}
	if validationErr, ok := domain.IsValidationError(err); ok {
		detail.Message = "request validation failed"
		detail.Details = validationErr.Violations
	}

	return application.ToHTTPStatus(err), APIResponse{Success: false, Error: detail}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status, response := ErrorResponse(err)
	LogFailure(logger, err, status)
	WriteJSON(w, status, response)
}

// LogFailure records what the caller will not see. Gateway errors carry the upstream
// cause, which is logged even when the response only holds the standard message.
func LogFailure(logger *slog.Logger, err error, status int) {
	attrs := []any{
		"status", status,
		"code", application.ToErrorCode(err),
		"category", application.CategorizeError(err),
		"error", err,
	}
	if gwErr, ok := application.IsGatewayError(err); ok && gwErr.Err != nil {
		attrs = append(attrs, "cause", gwErr.Err.Error())
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", attrs...)
		return
	}
	logger.Warn("request rejected", attrs...)
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		http.Error(w, `{"success":false,"error":{"code":"INTERNAL_ERROR","message":"failed to encode response"}}`, http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, payload)
}

func writeRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
