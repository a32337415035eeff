// FILE: database/repository/slotgroup/indexes.go
package slotgroupRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes used by the slot group queries.
func (r *mongoSlotGroupRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Confirm resolves the owning group from a slot id.
		{
			Keys:    bson.D{{Key: "slots.id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_slot_id"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "responderId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("status_responder_created_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create slot group indexes: %w", err)
	}
	return nil
}
