package slotgroupRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hirewire/models"
)

// MemorySlotGroupRepo is an in-process SlotGroupRepository used for local
// development (STORAGE_DRIVER=memory) and tests. It keeps the same
// compare-and-set semantics as the MongoDB implementation.
type MemorySlotGroupRepo struct {
	mu     sync.Mutex
	groups map[string]models.SlotGroup
	bySlot map[string]string
}

var _ SlotGroupRepository = (*MemorySlotGroupRepo)(nil)

// NewMemorySlotGroupRepo returns an empty in-memory repository.
func NewMemorySlotGroupRepo() *MemorySlotGroupRepo {
	return &MemorySlotGroupRepo{
		groups: map[string]models.SlotGroup{},
		bySlot: map[string]string{},
	}
}

func (r *MemorySlotGroupRepo) Create(ctx context.Context, group *models.SlotGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[group.ID]; exists {
		return fmt.Errorf("failed to insert slot group: duplicate id %s", group.ID)
	}
	for _, s := range group.Slots {
		if _, exists := r.bySlot[s.ID]; exists {
			return fmt.Errorf("failed to insert slot group: duplicate slot id %s", s.ID)
		}
	}
	r.groups[group.ID] = group.Clone()
	for _, s := range group.Slots {
		r.bySlot[s.ID] = group.ID
	}
	return nil
}

func (r *MemorySlotGroupRepo) GetByID(ctx context.Context, groupID string) (*models.SlotGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupID]
	if !ok {
		return nil, ErrNotFound
	}
	out := g.Clone()
	return &out, nil
}

func (r *MemorySlotGroupRepo) GetBySlotID(ctx context.Context, slotID string) (*models.SlotGroup, error) {
	r.mu.Lock()
	groupID, ok := r.bySlot[slotID]
	r.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, groupID)
}

func (r *MemorySlotGroupRepo) ListPending(ctx context.Context, responderID string) ([]models.SlotGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	groups := []models.SlotGroup{}
	for _, g := range r.groups {
		if g.Status != models.SlotGroupPending {
			continue
		}
		if responderID != "" && g.ResponderID != "" && g.ResponderID != responderID {
			continue
		}
		groups = append(groups, g.Clone())
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].CreatedAt.Equal(groups[j].CreatedAt) {
			return groups[i].ID < groups[j].ID
		}
		return groups[i].CreatedAt.Before(groups[j].CreatedAt)
	})
	return groups, nil
}

func (r *MemorySlotGroupRepo) ConfirmSlot(ctx context.Context, slotID string, resolvedAt time.Time) (*models.SlotGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	groupID, ok := r.bySlot[slotID]
	if !ok {
		return nil, ErrNotFound
	}
	g := r.groups[groupID]
	if err := g.Confirm(slotID, resolvedAt); err != nil {
		return nil, err
	}
	r.groups[groupID] = g
	out := g.Clone()
	return &out, nil
}

func (r *MemorySlotGroupRepo) Reject(ctx context.Context, groupID string, resolvedAt time.Time) (*models.SlotGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupID]
	if !ok {
		return nil, ErrNotFound
	}
	if err := g.Reject(resolvedAt); err != nil {
		return nil, err
	}
	r.groups[groupID] = g
	out := g.Clone()
	return &out, nil
}

func (r *MemorySlotGroupRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}
