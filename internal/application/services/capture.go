package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
)

type CaptureService struct {
	gateway application.Gateway
	policy  *application.ErrorPolicy
	logger  *slog.Logger
}

func NewCaptureService(
	gateway application.Gateway,
	policy *application.ErrorPolicy,
	logger *slog.Logger,
) *CaptureService {
	return &CaptureService{
		gateway: gateway,
		policy:  policy,
		logger:  logger,
	}
}

// Capture captures an approved order. A 422 from the processor usually means the order
// was captured before; in that case the existing capture id is looked up and either
// returned (IgnoreAlreadyCaptured) or reported as an AlreadyCaptured error.
func (s *CaptureService) Capture(ctx context.Context, cmd CaptureCommand) (*CaptureResult, error) {
	capture, err := domain.NewCapture(cmd.Token)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.CaptureOrder(ctx, cmd.Token)
	if err != nil {
		if procErr, ok := application.IsProcessorError(err); ok && procErr.StatusCode == http.StatusUnprocessableEntity {
			return s.recoverCaptured(ctx, capture, cmd.IgnoreAlreadyCaptured)
		}
		return nil, s.fail(capture, "capture order failed", err)
	}

	if resp.CaptureID == "" {
		_ = capture.Fail()
		s.logger.Error("capture response without capture id", "token", cmd.Token, "status", resp.StatusCode)
		return nil, s.policy.HandleError(application.DescribeFailure(resp.StatusCode, "PayPal did not return a capture id"))
	}

	// Confirmatory read. Only its failure matters.
	if _, err := s.gateway.GetOrder(ctx, cmd.Token); err != nil {
		return nil, s.fail(capture, "confirm captured order failed", err)
	}

	if err := capture.Confirm(resp.CaptureID); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("order captured", "token", cmd.Token, "capture_id", capture.CaptureID)
	return toResult(capture), nil
}

func (s *CaptureService) recoverCaptured(ctx context.Context, capture *domain.Capture, ignoreAlreadyCaptured bool) (*CaptureResult, error) {
	order, err := s.gateway.GetOrder(ctx, capture.Token)
	if err != nil {
		return nil, s.fail(capture, "lookup after rejected capture failed", err)
	}

	if order.CaptureID == "" {
		_ = capture.Fail()
		msg := order.Message
		if msg == "" {
			msg = fmt.Sprintf("order could not be captured (status %s)", order.Status)
		}
		s.logger.Error("capture rejected and no existing capture found",
			"token", capture.Token,
			"order_status", order.Status,
			"message", order.Message)
		return nil, s.policy.HandleError(application.DescribeFailure(order.StatusCode, msg))
	}

	if err := capture.MarkAlreadyCaptured(order.CaptureID); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Warn("order already captured",
		"token", capture.Token,
		"capture_id", capture.CaptureID,
		"ignored", ignoreAlreadyCaptured)

	if !ignoreAlreadyCaptured {
		if err := capture.Reject(); err != nil {
			return nil, application.NewInternalError(err)
		}
		return nil, application.NewAlreadyCapturedError(capture.Token, capture.CaptureID)
	}

	if err := capture.Confirm(capture.CaptureID); err != nil {
		return nil, application.NewInternalError(err)
	}
	return toResult(capture), nil
}

func (s *CaptureService) fail(capture *domain.Capture, msg string, err error) error {
	_ = capture.Fail()
	s.logger.Error(msg, "token", capture.Token, "error", err)
	return s.policy.HandleGatewayError(err)
}

func toResult(c *domain.Capture) *CaptureResult {
	return &CaptureResult{
		Token:           c.Token,
		CaptureID:       c.CaptureID,
		State:           c.State,
		Success:         c.State == domain.CaptureCaptured,
		AlreadyCaptured: c.Duplicate,
	}
}
