package application

import (
	"context"
	"encoding/json"
	"time"
)

// Gateway is the port for the external payment processor.
// Implementations must be safe for concurrent use.
type Gateway interface {
	CreateOrder(ctx context.Context, req *OrderRequest) (*CreateOrderResponse, error)
	CaptureOrder(ctx context.Context, token string) (*CaptureOrderResponse, error)
	GetOrder(ctx context.Context, token string) (*GetOrderResponse, error)
}

type CreateOrderResponse struct {
	StatusCode   int
	Token        string
	ApprovalLink string
}

type CaptureOrderResponse struct {
	StatusCode int
	CaptureID  string
}

type GetOrderResponse struct {
	StatusCode int
	Status     string
	CaptureID  string
	Message    string
}

// IdempotencyStore keeps replayable responses for client supplied Idempotency-Key values.
type IdempotencyStore interface {
	// AcquireLock claims key for requestHash. It returns nil when the caller now owns the
	// key, the existing record when the key is already known, or ErrIdempotencyMismatch
	// when the key was used for a different request.
	AcquireLock(ctx context.Context, key, requestHash string) (*IdempotencyRecord, error)
	StoreResponse(ctx context.Context, key string, responsePayload []byte, statusCode int) error
	ReleaseLock(ctx context.Context, key string) error
	PurgeExpired(ctx context.Context, olderThan time.Time) (int64, error)
	ReleaseStaleLocks(ctx context.Context, lockedBefore time.Time) (int64, error)
}

type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	LockedAt        *time.Time
	ResponsePayload json.RawMessage
	StatusCode      *int
	CreatedAt       time.Time
}

// IsComplete checks if the request associated with this key has been processed.
func (i *IdempotencyRecord) IsComplete() bool {
	return i.ResponsePayload != nil && i.StatusCode != nil
}
