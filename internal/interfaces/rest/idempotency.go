package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/application/services"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

// HandleFunc produces the data of a successful response.
type HandleFunc func(ctx context.Context) (any, error)

// IdempotencyGuard runs a handler at most once per Idempotency-Key and replays the
// stored response for repeats. Requests without the header are served directly.
type IdempotencyGuard struct {
	store  application.IdempotencyStore
	logger *slog.Logger
}

func NewIdempotencyGuard(store application.IdempotencyStore, logger *slog.Logger) *IdempotencyGuard {
	return &IdempotencyGuard{store: store, logger: logger}
}

type requestFingerprint struct {
	Method string
	Path   string
	Query  string
	Body   string
}

func (g *IdempotencyGuard) Serve(w http.ResponseWriter, r *http.Request, body []byte, successStatus int, handle HandleFunc) {
	key := r.Header.Get(IdempotencyKeyHeader)
	if key == "" || g.store == nil {
		status, response := g.run(r.Context(), successStatus, handle)
		WriteJSON(w, status, response)
		return
	}

	hash := services.ComputeHash(requestFingerprint{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
	})

	existing, err := g.store.AcquireLock(r.Context(), key, hash)
	if err != nil {
		if _, ok := application.IsServiceError(err); !ok {
			err = application.NewInternalError(err)
		}
		WriteError(w, err, g.logger)
		return
	}
	if existing != nil {
		if !existing.IsComplete() {
			WriteError(w, application.NewRequestProcessingError(), g.logger)
			return
		}
		g.logger.Info("replaying idempotent response", "key", key, "status", *existing.StatusCode)
		w.Header().Set(ReplayedHeader, "true")
		writeRaw(w, *existing.StatusCode, existing.ResponsePayload)
		return
	}

	status, response := g.run(r.Context(), successStatus, handle)
	payload, err := json.Marshal(response)
	if err != nil {
		g.release(r.Context(), key)
		WriteError(w, application.NewInternalError(err), g.logger)
		return
	}

	// The outcome is recorded even when the client has gone away.
	if status >= http.StatusInternalServerError {
		g.release(r.Context(), key)
	} else if err := g.store.StoreResponse(context.WithoutCancel(r.Context()), key, payload, status); err != nil {
		g.logger.Error("failed to store idempotent response", "key", key, "error", err)
	}

	writeRaw(w, status, payload)
}

func (g *IdempotencyGuard) run(ctx context.Context, successStatus int, handle HandleFunc) (int, APIResponse) {
	data, err := handle(ctx)
	if err != nil {
		status, response := ErrorResponse(err)
		LogFailure(g.logger, err, status)
		return status, response
	}
	return successStatus, APIResponse{Success: true, Data: data}
}

func (g *IdempotencyGuard) release(ctx context.Context, key string) {
	if err := g.store.ReleaseLock(context.WithoutCancel(ctx), key); err != nil {
		g.logger.Error("failed to release idempotency key", "key", key, "error", err)
	}
}
