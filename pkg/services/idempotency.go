package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskfleet/taskfleet/ent"
)

// lookupIdempotency returns the response recorded under key, if any.
// A record older than ttl is treated as a miss but is NOT deleted here;
// expiry is owned exclusively by the retention sweep. Purging on the lookup
// path would race a concurrent replay of a still-valid key.
func lookupIdempotency(ctx context.Context, tx *ent.Tx, key string, ttl time.Duration) (string, bool, error) {
	rec, err := tx.IdempotencyKey.Get(ctx, key)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to look up idempotency key: %w", err)
	}
	if time.Since(rec.CreatedAt) > ttl {
		return "", false, nil
	}
	return rec.Response, true, nil
}

// storeIdempotency records the serialized response under key inside the same
// transaction as the mutation it guards. A concurrent insert of the same key
// is ignored; the first committed record wins.
func storeIdempotency(ctx context.Context, tx *ent.Tx, key, response string) error {
	err := tx.IdempotencyKey.Create().
		SetID(key).
		SetResponse(response).
		OnConflict().
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

// recordResponse stores the serialized response under the idempotency key,
// when one was supplied, inside the mutation's transaction
func recordResponse(ctx context.Context, tx *ent.Tx, key string, v any) error {
	if key == "" {
		return nil
	}
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize response: %w", err)
	}
	return storeIdempotency(ctx, tx, key, string(body))
}
