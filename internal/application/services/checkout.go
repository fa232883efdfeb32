package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
)

const errMissingConfirmationURL = "PayPal did not return a confirmation URL. Please contact the owner of this page or the appropriate developer."

type CheckoutService struct {
	gateway   application.Gateway
	assembler *OrderAssembler
	policy    *application.ErrorPolicy
	logger    *slog.Logger
}

func NewCheckoutService(
	gateway application.Gateway,
	assembler *OrderAssembler,
	policy *application.ErrorPolicy,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		gateway:   gateway,
		assembler: assembler,
		policy:    policy,
		logger:    logger,
	}
}

// CreateOrder validates the order, submits it and returns the processor token together
// with the URL the buyer has to visit to approve the payment.
func (s *CheckoutService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	if violations := domain.ValidateOrder(cmd.Header, cmd.Contact, cmd.Lines); len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	req, err := s.assembler.Assemble(cmd)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Error("create order failed",
			"reference_id", cmd.Header.ReferenceID,
			"error", err)
		return nil, s.policy.HandleGatewayError(err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		s.logger.Error("create order returned unexpected status",
			"reference_id", cmd.Header.ReferenceID,
			"status", resp.StatusCode)
		return nil, s.policy.HandleError(application.DescribeFailure(resp.StatusCode, "unexpected response status"))
	}

	if resp.Token == "" || resp.ApprovalLink == "" {
		s.logger.Error("create order response incomplete",
			"reference_id", cmd.Header.ReferenceID,
			"token", resp.Token)
		return nil, s.policy.HandleError(application.DescribeFailure(resp.StatusCode, errMissingConfirmationURL))
	}

	s.logger.Info("order created",
		"reference_id", cmd.Header.ReferenceID,
		"token", resp.Token)

	return &CreateOrderResult{
		Token:        resp.Token,
		ApprovalLink: resp.ApprovalLink,
	}, nil
}
