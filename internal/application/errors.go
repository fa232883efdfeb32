package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeAlreadyCaptured     = "ALREADY_CAPTURED"
	ErrCodeIdempotencyMismatch = "IDEMPOTENCY_MISMATCH"
	ErrCodeRequestProcessing   = "REQUEST_PROCESSING"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeGateway             = "GATEWAY_ERROR"
)

// ErrIdempotencyMismatch is returned by an IdempotencyStore when a key is replayed
// with a different request body.
var ErrIdempotencyMismatch = NewIdempotencyMismatchError()

func NewAlreadyCapturedError(token, captureID string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeAlreadyCaptured,
		Message:    fmt.Sprintf("order %s has already been captured (capture id %s)", token, captureID),
		HTTPStatus: http.StatusConflict,
	}
}

func IsAlreadyCaptured(err error) bool {
	svcErr, ok := IsServiceError(err)
	return ok && svcErr.Code == ErrCodeAlreadyCaptured
}

func NewIdempotencyMismatchError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeIdempotencyMismatch,
		Message:    "Idempotency key reused with different request parameters",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewRequestProcessingError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeRequestProcessing,
		Message:    "Request is being processed. Please retry in a moment.",
		HTTPStatus: http.StatusConflict,
	}
}

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for completion",
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	msg := "Invalid input"
	if err != nil {
		msg = fmt.Sprintf("Invalid input: %v", err)
	}
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ProcessorError is a non-2xx answer from the payment processor.
// Message holds the raw response body.
type ProcessorError struct {
	StatusCode int
	Name       string
	DebugID    string
	Message    string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor error %d: %s", e.StatusCode, e.Message)
}

func IsProcessorError(err error) (*ProcessorError, bool) {
	var procErr *ProcessorError
	ok := errors.As(err, &procErr)
	return procErr, ok
}

// GatewayError is what callers see when the processor fails. Message is already
// filtered by the ErrorPolicy; Err keeps the upstream cause for logs and is never
// part of Error().
type GatewayError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}
