package paypal

import (
	"encoding/json"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
)

// newProcessorError keeps the raw body as message so the error policy can dump it.
func newProcessorError(statusCode int, body []byte) *application.ProcessorError {
	procErr := &application.ProcessorError{
		StatusCode: statusCode,
		Message:    string(body),
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		procErr.Name = errResp.Name
		if procErr.Name == "" {
			procErr.Name = errResp.Error
		}
		procErr.DebugID = errResp.DebugID
	}

	return procErr
}
