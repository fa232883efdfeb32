package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/interfaces/rest"
)

// Recovery turns a handler panic into a 500 envelope. The panic value and stack are
// logged, never returned.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error(
					"panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				err := application.NewInternalError(fmt.Errorf("panic: %v", rec))
				status, response := rest.ErrorResponse(err)
				response.Error.Message = "Internal server error"
				rest.WriteJSON(w, status, response)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
