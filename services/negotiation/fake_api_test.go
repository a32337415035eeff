package negotiation_test

import (
	"context"
	"sync"
	"time"

	"hirewire/models"
)

// fakeAPI records calls and returns canned results.
type fakeAPI struct {
	mu sync.Mutex

	proposeCalls int
	pendingCalls int
	confirmCalls int
	rejectCalls  int

	proposed   [][]models.SlotCandidate
	confirmed  []string
	proposeAck models.Ack
	proposeErr error
	pending    []models.PendingSlotGroup
	pendingErr error
	confirmAck models.Ack
	confirmErr error
	rejectAck  models.Ack
	rejectErr  error

	// block, when set, holds ProposeInterviewSlots until closed.
	block chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		proposeAck: models.Ack{Success: true, Message: "Interview slots proposed", SlotGroupID: "grp-1"},
		confirmAck: models.Ack{Success: true, Message: "Interview slot confirmed"},
		rejectAck:  models.Ack{Success: true, Message: "Slot group rejected"},
	}
}

func (f *fakeAPI) ProposeInterviewSlots(ctx context.Context, requesterID string, slots []models.SlotCandidate) (models.Ack, error) {
	f.mu.Lock()
	f.proposeCalls++
	f.proposed = append(f.proposed, slots)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return models.Ack{}, ctx.Err()
		}
	}
	return f.proposeAck, f.proposeErr
}

func (f *fakeAPI) GetPendingSlots(ctx context.Context, responderID string) ([]models.PendingSlotGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingCalls++
	return f.pending, f.pendingErr
}

func (f *fakeAPI) ConfirmInterviewSlot(ctx context.Context, slotID string) (models.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmCalls++
	f.confirmed = append(f.confirmed, slotID)
	return f.confirmAck, f.confirmErr
}

func (f *fakeAPI) RejectSlotGroup(ctx context.Context, groupID string) (models.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectCalls++
	return f.rejectAck, f.rejectErr
}

func (f *fakeAPI) calls() (propose, pending, confirm, reject int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.proposeCalls, f.pendingCalls, f.confirmCalls, f.rejectCalls
}

func pendingGroup(id string, slotIDs ...string) models.PendingSlotGroup {
	start := time.Date(2030, time.March, 4, 9, 0, 0, 0, time.UTC)
	g := models.PendingSlotGroup{
		SlotGroupID: id,
		Customer:    models.Customer{ID: "cand-42", Name: "Ada"},
		CreatedAt:   start.Add(-48 * time.Hour),
	}
	for i, sid := range slotIDs {
		s := start.AddDate(0, 0, i)
		g.Slots = append(g.Slots, models.PendingSlot{ID: sid, StartTime: s, EndTime: s.Add(time.Hour)})
	}
	return g
}
