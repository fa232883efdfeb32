package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
	"github.com/oapi-codegen/runtime"
)

type CaptureResponse struct {
	Token           string              `json:"token"`
	CaptureID       string              `json:"capture_id"`
	State           domain.CaptureState `json:"state"`
	AlreadyCaptured bool                `json:"already_captured"`
}

func (h *Handlers) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	h.guard.Serve(w, r, nil, http.StatusOK, func(ctx context.Context) (any, error) {
		var token string
		err := runtime.BindStyledParameterWithOptions("simple", "token", r.PathValue("token"), &token,
			runtime.BindStyledParameterOptions{
				ParamLocation: runtime.ParamLocationPath,
				Explode:       false,
				Required:      true,
			})
		if err != nil {
			return nil, application.NewInvalidInputError(err)
		}

		var ignoreAlreadyCaptured bool
		err = runtime.BindQueryParameter("form", true, false, "ignore_already_captured", r.URL.Query(), &ignoreAlreadyCaptured)
		if err != nil {
			return nil, application.NewInvalidInputError(err)
		}

		result, err := h.capture.Capture(ctx, services.CaptureCommand{
			Token:                 token,
			IgnoreAlreadyCaptured: ignoreAlreadyCaptured,
		})
		if err != nil {
			return nil, err
		}

		h.logger.Info("order captured",
			"token", result.Token,
			"capture_id", result.CaptureID,
			"already_captured", result.AlreadyCaptured,
		)

		return CaptureResponse{
			Token:           result.Token,
			CaptureID:       result.CaptureID,
			State:           result.State,
			AlreadyCaptured: result.AlreadyCaptured,
		}, nil
	})
}
