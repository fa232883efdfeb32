package rest_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-gateway/internal/interfaces/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "already captured",
			err:     application.NewAlreadyCapturedError("T1", "C1"),
			status:  http.StatusConflict,
			code:    application.ErrCodeAlreadyCaptured,
			message: "order T1 has already been captured (capture id C1)",
		},
		{
			name:    "gateway error hides its cause",
			err:     &application.GatewayError{Message: "Payment provider unavailable", Err: errors.New("401 invalid_client")},
			status:  http.StatusBadGateway,
			code:    application.ErrCodeGateway,
			message: "Payment provider unavailable",
		},
		{
			name:    "gateway timeout",
			err:     &application.GatewayError{Message: "slow", Err: context.DeadlineExceeded},
			status:  http.StatusGatewayTimeout,
			code:    application.ErrCodeGateway,
			message: "slow",
		},
		{
			name:    "internal invariant",
			err:     domain.NewInternalInvariantError("nil header"),
			status:  http.StatusInternalServerError,
			code:    domain.ErrCodeInternalInvariant,
			message: "internal invariant violated: nil header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, response := rest.ErrorResponse(tt.err)

			assert.Equal(t, tt.status, status)
			assert.False(t, response.Success)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.code, response.Error.Code)
			assert.Equal(t, tt.message, response.Error.Message)
		})
	}
}

func TestErrorResponse_ValidationDetails(t *testing.T) {
	status, response := rest.ErrorResponse(domain.NewValidationError("a", "b", "c"))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, application.ErrCodeValidation, response.Error.Code)
	assert.Equal(t, []string{"a", "b", "c"}, response.Error.Details)
}
