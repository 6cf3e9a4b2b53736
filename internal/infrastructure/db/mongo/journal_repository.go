package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
	"github.com/communitysafe/safety-gateway/internal/core/ports"
)

const journalCollection = "submission_journal"

// JournalRepository implements ports.JournalRepository using MongoDB. Only
// settled outcomes are written; drafts never touch the journal.
type JournalRepository struct {
	db *mongo.Database
}

// NewJournalRepository creates a JournalRepository.
func NewJournalRepository(db *mongo.Database) ports.JournalRepository {
	return &JournalRepository{db: db}
}

// Append inserts one journal entry.
func (r *JournalRepository) Append(ctx context.Context, entry *domain.JournalEntry) error {
	doc := bson.M{
		"session_id":  entry.SessionID,
		"outcome":     string(entry.Outcome),
		"occurred_at": entry.OccurredAt.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if entry.AlertID != "" {
		doc["alert_id"] = entry.AlertID
	}
	if entry.Reason != "" {
		doc["reason"] = entry.Reason
	}
	if entry.Coordinate != nil {
		doc["coordinate"] = bson.M{
			"latitude":  entry.Coordinate.Latitude,
			"longitude": entry.Coordinate.Longitude,
		}
	}

	_, err := r.db.Collection(journalCollection).InsertOne(ctx, doc)
	return err
}
