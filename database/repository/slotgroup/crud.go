// File: database/repository/slotgroup/crud.go
package slotgroupRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hirewire/models"
)

func (r *mongoSlotGroupRepo) Create(ctx context.Context, group *models.SlotGroup) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, group); err != nil {
		return fmt.Errorf("failed to insert slot group: %w", err)
	}
	return nil
}

func (r *mongoSlotGroupRepo) GetByID(ctx context.Context, groupID string) (*models.SlotGroup, error) {
	return r.findOne(ctx, bson.M{"id": groupID})
}

func (r *mongoSlotGroupRepo) GetBySlotID(ctx context.Context, slotID string) (*models.SlotGroup, error) {
	return r.findOne(ctx, bson.M{"slots.id": slotID})
}

// ConfirmSlot atomically moves the group owning slotID from pending to
// confirmed. A group that exists but is no longer pending yields
// ErrAlreadyResolved.
func (r *mongoSlotGroupRepo) ConfirmSlot(ctx context.Context, slotID string, resolvedAt time.Time) (*models.SlotGroup, error) {
	filter := bson.M{"slots.id": slotID, "status": models.SlotGroupPending}
	update := bson.M{"$set": bson.M{
		"status":         models.SlotGroupConfirmed,
		"selectedSlotId": slotID,
		"resolvedAt":     resolvedAt,
	}}
	return r.transition(ctx, filter, update, bson.M{"slots.id": slotID})
}

// Reject atomically moves a pending group to rejected.
func (r *mongoSlotGroupRepo) Reject(ctx context.Context, groupID string, resolvedAt time.Time) (*models.SlotGroup, error) {
	filter := bson.M{"id": groupID, "status": models.SlotGroupPending}
	update := bson.M{"$set": bson.M{
		"status":     models.SlotGroupRejected,
		"resolvedAt": resolvedAt,
	}}
	return r.transition(ctx, filter, update, bson.M{"id": groupID})
}

func (r *mongoSlotGroupRepo) transition(ctx context.Context, filter, update, existsFilter bson.M) (*models.SlotGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var group models.SlotGroup
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&group)
	if err == nil {
		return &group, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update slot group: %w", err)
	}

	count, cerr := r.coll.CountDocuments(ctx, existsFilter)
	if cerr != nil {
		return nil, fmt.Errorf("failed to look up slot group: %w", cerr)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	return nil, ErrAlreadyResolved
}

func (r *mongoSlotGroupRepo) findOne(ctx context.Context, filter bson.M) (*models.SlotGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.SlotGroup
	err := r.coll.FindOne(ctx, filter).Decode(&group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slot group: %w", err)
	}
	return &group, nil
}
