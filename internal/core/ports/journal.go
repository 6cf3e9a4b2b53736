package ports

import (
	"context"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

// JournalRepository appends settled submission outcomes to the audit journal.
// Writes are best-effort: callers log and continue on failure.
type JournalRepository interface {
	Append(ctx context.Context, entry *domain.JournalEntry) error
}
