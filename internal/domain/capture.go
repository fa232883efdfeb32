package domain

import (
	"slices"
	"time"
)

// CaptureState is where a capture attempt stands in its lifecycle
type CaptureState string

const (
	CaptureRequested       CaptureState = "REQUESTED"
	CaptureCaptured        CaptureState = "CAPTURED"
	CaptureAlreadyCaptured CaptureState = "ALREADY_CAPTURED"
	CaptureRejected        CaptureState = "REJECTED"
	CaptureFailed          CaptureState = "FAILED"
)

// Capture tracks one attempt to capture an approved order identified by Token.
type Capture struct {
	Token     string
	State     CaptureState
	CaptureID string

	// Duplicate is set when the processor already held a capture for the token.
	Duplicate bool

	RequestedAt time.Time
	CapturedAt  *time.Time
}

func NewCapture(token string) (*Capture, error) {
	if token == "" {
		return nil, NewValidationError("the order token is empty")
	}
	return &Capture{
		Token:       token,
		State:       CaptureRequested,
		RequestedAt: time.Now(),
	}, nil
}

// Confirm records a successful capture. From ALREADY_CAPTURED it accepts the existing id.
func (c *Capture) Confirm(captureID string) error {
	if captureID == "" {
		return NewMissingRequiredFieldError("capture ID")
	}
	if err := c.transition(CaptureCaptured); err != nil {
		return err
	}
	now := time.Now()
	c.CaptureID = captureID
	c.CapturedAt = &now
	return nil
}

// MarkAlreadyCaptured records that the processor reported an existing capture.
func (c *Capture) MarkAlreadyCaptured(existingCaptureID string) error {
	if err := c.transition(CaptureAlreadyCaptured); err != nil {
		return err
	}
	c.CaptureID = existingCaptureID
	c.Duplicate = true
	return nil
}

func (c *Capture) Reject() error {
	return c.transition(CaptureRejected)
}

func (c *Capture) Fail() error {
	return c.transition(CaptureFailed)
}

func (c *Capture) transition(target CaptureState) error {
	if err := c.canTransitionTo(target); err != nil {
		return err
	}
	c.State = target
	return nil
}

// Valid transitions are:
//   - REQUESTED → CAPTURED, ALREADY_CAPTURED, FAILED
//   - ALREADY_CAPTURED → CAPTURED, REJECTED
//
// CAPTURED, REJECTED and FAILED are terminal.
func (c *Capture) canTransitionTo(target CaptureState) error {
	switch c.State {
	case CaptureRequested:
		return c.allow(target, CaptureCaptured, CaptureAlreadyCaptured, CaptureFailed)
	case CaptureAlreadyCaptured:
		return c.allow(target, CaptureCaptured, CaptureRejected)
	}
	return NewInvalidTransitionError(c.State, target)
}

func (c *Capture) allow(target CaptureState, allowed ...CaptureState) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return NewInvalidTransitionError(c.State, target)
}

func (c *Capture) IsTerminal() bool {
	switch c.State {
	case CaptureCaptured, CaptureRejected, CaptureFailed:
		return true
	default:
		return false
	}
}
