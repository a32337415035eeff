// File: database/repository/slotgroup/interface.go
package slotgroupRepo

import (
	"context"
	"errors"
	"time"

	"hirewire/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no group owns the requested id.
	ErrNotFound = errors.New("slot group not found")
	// ErrAlreadyResolved is returned when a transition targets a group that is
	// no longer pending.
	ErrAlreadyResolved = models.ErrSlotGroupResolved
)

// SlotGroupRepository persists negotiations. ConfirmSlot and Reject are
// compare-and-set: they only succeed while the group is pending, which makes
// the store the single arbiter of at most one confirmed slot per group.
type SlotGroupRepository interface {
	Create(ctx context.Context, group *models.SlotGroup) error
	GetByID(ctx context.Context, groupID string) (*models.SlotGroup, error)
	GetBySlotID(ctx context.Context, slotID string) (*models.SlotGroup, error)
	ListPending(ctx context.Context, responderID string) ([]models.SlotGroup, error)
	ConfirmSlot(ctx context.Context, slotID string, resolvedAt time.Time) (*models.SlotGroup, error)
	Reject(ctx context.Context, groupID string, resolvedAt time.Time) (*models.SlotGroup, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoSlotGroupRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotGroupRepo constructs a MongoDB SlotGroupRepository on db.
func NewMongoSlotGroupRepo(db *mongo.Database) SlotGroupRepository {
	return &mongoSlotGroupRepo{
		coll: db.Collection("slot_groups"),
	}
}
