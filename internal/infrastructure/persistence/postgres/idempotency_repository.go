package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/jackc/pgx/v5"
)

type IdempotencyRepository struct {
	db *DB
}

var _ application.IdempotencyStore = (*IdempotencyRepository)(nil)

func NewIdempotencyRepository(db *DB) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// AcquireLock inserts the key. When the key already exists the stored record is
// returned instead, or ErrIdempotencyMismatch if it belongs to another request.
func (r *IdempotencyRepository) AcquireLock(ctx context.Context, key, requestHash string) (*application.IdempotencyRecord, error) {
	insert := `
		INSERT INTO idempotency_keys (key, request_hash, locked_at)
		VALUES ($1, $2, $3)
	`

	// A concurrent ReleaseLock can delete the row between the insert and the lookup,
	// so the insert is attempted twice.
	for attempt := 0; attempt < 2; attempt++ {
		_, err := r.db.Pool.Exec(ctx, insert, key, requestHash, time.Now())
		if err == nil {
			return nil, nil
		}
		if !IsUniqueViolation(err) {
			return nil, fmt.Errorf("failed to acquire idempotency lock: %w", err)
		}

		existing, err := r.FindByKey(ctx, key)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if existing.RequestHash != requestHash {
			return nil, application.ErrIdempotencyMismatch
		}
		return existing, nil
	}

	return nil, fmt.Errorf("failed to acquire idempotency lock for %q: key released concurrently", key)
}

func (r *IdempotencyRepository) FindByKey(ctx context.Context, key string) (*application.IdempotencyRecord, error) {
	query := `
		SELECT key, request_hash, locked_at, response_payload, status_code, created_at
		FROM idempotency_keys
		WHERE key = $1
	`
	var m idempotencyKeyModel

	err := r.db.Pool.QueryRow(ctx, query, key).Scan(
		&m.Key,
		&m.RequestHash,
		&m.LockedAt,
		&m.ResponsePayload,
		&m.StatusCode,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no key found: %w", err)
		}
		return nil, fmt.Errorf("failed to load idempotency key: %w", err)
	}

	return m.toRecord(), nil
}

func (r *IdempotencyRepository) StoreResponse(ctx context.Context, key string, responsePayload []byte, statusCode int) error {
	query := `
		UPDATE idempotency_keys
		SET response_payload = $1, status_code = $2, locked_at = NULL
		WHERE key = $3
	`

	_, err := r.db.Pool.Exec(ctx, query, responsePayload, statusCode, key)
	if err != nil {
		return fmt.Errorf("failed to store idempotency response: %w", err)
	}

	return nil
}

// ReleaseLock forgets an in-flight key so the client may retry with it.
// Completed keys are left alone.
func (r *IdempotencyRepository) ReleaseLock(ctx context.Context, key string) error {
	query := `DELETE FROM idempotency_keys WHERE key = $1 AND response_payload IS NULL`

	_, err := r.db.Pool.Exec(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to release idempotency lock: %w", err)
	}

	return nil
}

func (r *IdempotencyRepository) PurgeExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM idempotency_keys WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to purge idempotency keys: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *IdempotencyRepository) ReleaseStaleLocks(ctx context.Context, lockedBefore time.Time) (int64, error) {
	query := `
		DELETE FROM idempotency_keys
		WHERE response_payload IS NULL AND locked_at < $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, lockedBefore)
	if err != nil {
		return 0, fmt.Errorf("failed to release stale idempotency locks: %w", err)
	}
	return tag.RowsAffected(), nil
}
