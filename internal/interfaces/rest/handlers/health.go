package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/interfaces/rest"
)

const healthTimeout = 2 * time.Second

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		h.logger.Error("health check failed", "error", err)
		rest.WriteJSON(w, http.StatusServiceUnavailable, rest.APIResponse{
			Error: &rest.ErrorDetail{Code: "UNAVAILABLE", Message: "database unreachable"},
		})
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.APIResponse{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}
