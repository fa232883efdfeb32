package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/checkout-gateway/internal/domain"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if _, ok := domain.IsValidationError(err); ok {
		return CategoryClientError
	}

	if domain.IsErrorCode(err, domain.ErrCodeInvalidTransition) {
		return CategoryBusinessRule
	}
	if domain.IsErrorCode(err, domain.ErrCodeInternalInvariant) {
		return CategoryInfrastructure
	}
	if domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeIdempotencyMismatch, ErrCodeInvalidInput:
			return CategoryClientError
		case ErrCodeAlreadyCaptured:
			return CategoryBusinessRule
		case ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeRequestProcessing, ErrCodeTimeout:
			return CategoryTransient
		}
	}

	// Processor answers, possibly wrapped in a GatewayError.
	if procErr, ok := IsProcessorError(err); ok {
		switch {
		case procErr.StatusCode >= 500, procErr.StatusCode == http.StatusTooManyRequests:
			return CategoryTransient
		case procErr.StatusCode == http.StatusUnauthorized:
			return CategoryInfrastructure
		default:
			return CategoryPermanent
		}
	}

	// Default: Transient (safe fallback)
	return CategoryTransient
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if _, ok := domain.IsValidationError(err); ok {
		return http.StatusBadRequest
	}

	if _, ok := IsGatewayError(err); ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField):
		return http.StatusBadRequest
	case domain.IsErrorCode(err, domain.ErrCodeInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if _, ok := domain.IsValidationError(err); ok {
		return ErrCodeValidation
	}

	if _, ok := IsGatewayError(err); ok {
		return ErrCodeGateway
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
