// File: database/repository/slotgroup/queries.go
package slotgroupRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hirewire/models"
)

// ListPending returns pending groups oldest first. With a responderID, only
// groups addressed to that responder or to nobody in particular are returned.
func (r *mongoSlotGroupRepo) ListPending(ctx context.Context, responderID string) ([]models.SlotGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": models.SlotGroupPending}
	if responderID != "" {
		filter["$or"] = bson.A{
			bson.M{"responderId": responderID},
			bson.M{"responderId": ""},
			bson.M{"responderId": bson.M{"$exists": false}},
		}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending slot groups: %w", err)
	}
	defer cursor.Close(ctx)

	groups := []models.SlotGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode pending slot groups: %w", err)
	}
	return groups, nil
}
