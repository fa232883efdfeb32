package postgres

import (
	"encoding/json"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
)

// idempotencyKeyModel mirrors a row of idempotency_keys. A row without a response
// is an in-flight request; LockedAt tells the janitor when it was claimed.
type idempotencyKeyModel struct {
	Key             string
	RequestHash     string
	LockedAt        *time.Time
	ResponsePayload []byte
	StatusCode      *int
	CreatedAt       time.Time
}

func (m *idempotencyKeyModel) toRecord() *application.IdempotencyRecord {
	record := &application.IdempotencyRecord{
		Key:         m.Key,
		RequestHash: m.RequestHash,
		LockedAt:    m.LockedAt,
		StatusCode:  m.StatusCode,
		CreatedAt:   m.CreatedAt,
	}
	if m.ResponsePayload != nil {
		record.ResponsePayload = json.RawMessage(m.ResponsePayload)
	}
	return record
}
