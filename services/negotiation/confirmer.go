package negotiation

import (
	"context"
	"time"

	"hirewire/models"

	"go.uber.org/zap"
)

// Confirmer finalizes a negotiation by confirming the staged slot, or
// rejecting the group outright.
type Confirmer struct {
	API      SlotAPI
	Registry *Registry
	Timeout  time.Duration
	Logger   *zap.Logger
	Now      func() time.Time

	pending inFlight
}

// NewConfirmer returns a Confirmer that updates registry on success.
func NewConfirmer(api SlotAPI, registry *Registry, timeout time.Duration, logger *zap.Logger) *Confirmer {
	return &Confirmer{API: api, Registry: registry, Timeout: timeout, Logger: loggerOrNop(logger), Now: time.Now}
}

// Confirm commits slotID for groupID. slotID must be the slot staged in the
// registry. A group that is already terminal, locally or on the backend,
// yields a conflict; the registry then flags the group for re-fetch instead
// of inviting a retry.
func (c *Confirmer) Confirm(ctx context.Context, groupID, slotID string) (models.Ack, error) {
	group, staged, ok := c.Registry.snapshot(groupID)
	if !ok {
		return models.Ack{}, validationError(ErrGroupNotFound)
	}
	if group.IsTerminal() {
		return models.Ack{}, conflictError(ErrGroupResolved)
	}
	if slotID == "" || staged != slotID {
		return models.Ack{}, validationError(ErrNoSlotSelected)
	}
	if !c.pending.begin(groupID) {
		return models.Ack{}, validationError(ErrRequestInFlight)
	}
	defer c.pending.end(groupID)

	ctx, cancel := withTimeout(ctx, c.Timeout)
	defer cancel()

	log := loggerOrNop(c.Logger).With(zap.String("slotGroupId", groupID), zap.String("slotId", slotID))
	ack, err := c.API.ConfirmInterviewSlot(ctx, slotID)
	if err != nil {
		e := classify(err)
		if e.Kind == KindConflict {
			c.Registry.markStale(groupID)
		}
		log.Warn("interview slot confirmation failed", zap.String("kind", string(e.Kind)), zap.Error(err))
		return models.Ack{}, e
	}
	if !ack.Success {
		return ack, networkError(&APIError{StatusCode: 200, Message: ack.Message})
	}

	if err := c.Registry.markConfirmed(groupID, slotID, c.now()); err != nil {
		// The backend accepted; a local mismatch only means the cache is behind.
		c.Registry.markStale(groupID)
		log.Warn("registry out of date after confirmation", zap.Error(err))
	}
	log.Info("interview slot confirmed")
	return ack, nil
}

// Reject closes groupID without selecting a slot.
func (c *Confirmer) Reject(ctx context.Context, groupID string) (models.Ack, error) {
	group, _, ok := c.Registry.snapshot(groupID)
	if !ok {
		return models.Ack{}, validationError(ErrGroupNotFound)
	}
	if group.IsTerminal() {
		return models.Ack{}, conflictError(ErrGroupResolved)
	}
	if !c.pending.begin(groupID) {
		return models.Ack{}, validationError(ErrRequestInFlight)
	}
	defer c.pending.end(groupID)

	ctx, cancel := withTimeout(ctx, c.Timeout)
	defer cancel()

	log := loggerOrNop(c.Logger).With(zap.String("slotGroupId", groupID))
	ack, err := c.API.RejectSlotGroup(ctx, groupID)
	if err != nil {
		e := classify(err)
		if e.Kind == KindConflict {
			c.Registry.markStale(groupID)
		}
		log.Warn("slot group rejection failed", zap.String("kind", string(e.Kind)), zap.Error(err))
		return models.Ack{}, e
	}
	if !ack.Success {
		return ack, networkError(&APIError{StatusCode: 200, Message: ack.Message})
	}

	if err := c.Registry.markRejected(groupID, c.now()); err != nil {
		c.Registry.markStale(groupID)
	}
	log.Info("slot group rejected")
	return ack, nil
}

func (c *Confirmer) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
