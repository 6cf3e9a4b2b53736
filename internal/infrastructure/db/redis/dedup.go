package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/communitysafe/safety-gateway/internal/api/metrics"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for report submissions backed by
// Redis. Key format: submission:<idempotency_key>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this idempotency key has already settled a
// successful submission.
func (d *DedupChecker) IsDuplicate(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.SubmissionDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.SubmissionDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that a submission with this key has succeeded (expires after
// dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, d.key(key), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(idempotencyKey string) string {
	return "submission:" + idempotencyKey
}
