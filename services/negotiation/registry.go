package negotiation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"hirewire/models"
	"hirewire/services/scheduling"

	"go.uber.org/zap"
)

type groupState struct {
	group  models.SlotGroup
	staged string
	stale  bool
}

// Registry holds the responder's open negotiations and the slot staged in
// each. Its statuses are a cache of the backend; after a conflict the group
// is flagged stale until the next Load.
type Registry struct {
	API     SlotAPI
	Timeout time.Duration
	Logger  *zap.Logger

	mu     sync.Mutex
	order  []string
	groups map[string]*groupState
}

// NewRegistry returns an empty Registry bound to api.
func NewRegistry(api SlotAPI, timeout time.Duration, logger *zap.Logger) *Registry {
	return &Registry{API: api, Timeout: timeout, Logger: loggerOrNop(logger), groups: map[string]*groupState{}}
}

// Load replaces the cache with the pending groups visible to responderID.
// Every loaded group starts with nothing staged.
func (r *Registry) Load(ctx context.Context, responderID string) ([]models.SlotGroup, error) {
	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	pending, err := r.API.GetPendingSlots(ctx, strings.TrimSpace(responderID))
	if err != nil {
		loggerOrNop(r.Logger).Warn("loading pending slot groups failed", zap.String("responderId", responderID), zap.Error(err))
		return nil, classify(err)
	}

	order := make([]string, 0, len(pending))
	groups := make(map[string]*groupState, len(pending))
	for _, p := range pending {
		g := p.ToSlotGroup()
		if g.Status != models.SlotGroupPending {
			continue
		}
		if _, dup := groups[g.ID]; dup {
			continue
		}
		order = append(order, g.ID)
		groups[g.ID] = &groupState{group: g}
	}

	r.mu.Lock()
	r.order, r.groups = order, groups
	r.mu.Unlock()

	return r.Groups(), nil
}

// Stage records slotID as the responder's choice for groupID. Only one slot
// is staged per group; the last call wins. Nothing is sent to the backend.
func (r *Registry) Stage(groupID, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.groups[groupID]
	if !ok {
		return validationError(ErrGroupNotFound)
	}
	if st.group.IsTerminal() {
		return conflictError(ErrGroupResolved)
	}
	if !st.group.HasSlot(slotID) {
		return validationError(fmt.Errorf("%w: %s", scheduling.ErrInvalidSlot, models.ErrSlotNotInGroup))
	}
	st.staged = slotID
	return nil
}

// Staged returns the slot staged for groupID, or "".
func (r *Registry) Staged(groupID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.groups[groupID]; ok {
		return st.staged
	}
	return ""
}

// Group returns a copy of the cached group.
func (r *Registry) Group(groupID string) (models.SlotGroup, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.groups[groupID]
	if !ok {
		return models.SlotGroup{}, false
	}
	return st.group.Clone(), true
}

// Groups returns copies of all cached groups in load order.
func (r *Registry) Groups() []models.SlotGroup {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.SlotGroup, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.groups[id].group.Clone())
	}
	return out
}

// NeedsRefresh reports whether any cached group is known to be out of date.
func (r *Registry) NeedsRefresh() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, st := range r.groups {
		if st.stale {
			return true
		}
	}
	return false
}

// IsStale reports whether groupID lost a race and must be re-fetched.
func (r *Registry) IsStale(groupID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.groups[groupID]
	return ok && st.stale
}

func (r *Registry) snapshot(groupID string) (models.SlotGroup, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.groups[groupID]
	if !ok {
		return models.SlotGroup{}, "", false
	}
	return st.group.Clone(), st.staged, true
}

func (r *Registry) markConfirmed(groupID, slotID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.groups[groupID]
	if !ok {
		return ErrGroupNotFound
	}
	return st.group.Confirm(slotID, at)
}

func (r *Registry) markRejected(groupID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.groups[groupID]
	if !ok {
		return ErrGroupNotFound
	}
	return st.group.Reject(at)
}

func (r *Registry) markStale(groupID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.groups[groupID]; ok {
		st.stale = true
	}
}
