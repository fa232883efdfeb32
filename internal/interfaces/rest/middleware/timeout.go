package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/interfaces/rest"
)

// handlerGrace lets a handler whose context expired write its own gateway timeout
// before the fallback body is sent.
const handlerGrace = time.Second

func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	_, response := rest.ErrorResponse(application.NewTimeoutError())
	body, _ := json.Marshal(response)

	return func(next http.Handler) http.Handler {
		timeoutHandler := http.TimeoutHandler(next, timeout+handlerGrace, string(body))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			timeoutHandler.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
