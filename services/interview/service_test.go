package interview_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	slotgroupRepo "hirewire/database/repository/slotgroup"
	"hirewire/models"
	"hirewire/services/interview"
	"hirewire/services/scheduling"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.InterviewEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e models.InterviewEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func newService(t *testing.T) (*interview.DefaultInterviewService, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	svc := interview.NewDefaultInterviewService(slotgroupRepo.NewMemorySlotGroupRepo(), pub, scheduling.BusinessCalendar{}, 0, nil)
	svc.Now = func() time.Time { return fixedNow }
	return svc, pub
}

func candidate(day, hour int) models.SlotCandidate {
	return models.SlotCandidate{Timestamp: time.Date(2025, time.June, day, hour, 0, 0, 0, time.UTC)}
}

func TestProposeSlotsCreatesPendingGroup(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	group, err := svc.ProposeSlots(ctx, "recruiter-1", models.ProposeSlotsRequest{
		RequesterID: "cand-42",
		Slots:       []models.SlotCandidate{candidate(16, 9), candidate(17, 14)},
	})
	if err != nil {
		t.Fatalf("ProposeSlots: %v", err)
	}
	if group.Status != models.SlotGroupPending {
		t.Errorf("status = %q, want pending", group.Status)
	}
	if len(group.Slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(group.Slots))
	}
	first := group.Slots[0]
	if first.DateLabel != "Mon, Jun 16" || first.TimeLabel != "9:00 AM" {
		t.Errorf("labels = %q %q", first.DateLabel, first.TimeLabel)
	}
	if got := first.EndTime.Sub(first.StartTime); got != time.Hour {
		t.Errorf("slot length = %v, want 1h", got)
	}
	if group.Slots[0].ID == group.Slots[1].ID {
		t.Error("slot ids are not unique")
	}
	if group.Customer.ID != "cand-42" {
		t.Errorf("customer id = %q", group.Customer.ID)
	}

	pending, err := svc.ListPending(ctx, "")
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 || pending[0].SlotGroupID != group.ID || len(pending[0].Slots) != 2 {
		t.Fatalf("pending = %+v", pending)
	}
	if got := pub.types(); len(got) != 1 || got[0] != models.EventSlotsProposed {
		t.Errorf("events = %v", got)
	}
}

func TestProposeSlotsValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.ProposeSlotsRequest
	}{
		{"missing requester", models.ProposeSlotsRequest{Slots: []models.SlotCandidate{candidate(16, 9)}}},
		{"no slots", models.ProposeSlotsRequest{RequesterID: "cand-42"}},
		{"past slot", models.ProposeSlotsRequest{RequesterID: "cand-42", Slots: []models.SlotCandidate{candidate(14, 9)}}},
		{"now is not future", models.ProposeSlotsRequest{RequesterID: "cand-42", Slots: []models.SlotCandidate{candidate(15, 10)}}},
		{"missing timestamp", models.ProposeSlotsRequest{RequesterID: "cand-42", Slots: []models.SlotCandidate{{DateLabel: "Mon, Jun 16", TimeLabel: "9:00 AM"}}}},
		{"duplicate", models.ProposeSlotsRequest{RequesterID: "cand-42", Slots: []models.SlotCandidate{candidate(16, 9), candidate(16, 9)}}},
		{"too many", models.ProposeSlotsRequest{RequesterID: "cand-42", Slots: []models.SlotCandidate{
			candidate(16, 9), candidate(16, 10), candidate(16, 11), candidate(16, 12),
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ProposeSlots(ctx, "recruiter-1", tt.req)
			if !interview.IsValidation(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}

	pending, _ := svc.ListPending(ctx, "")
	if len(pending) != 0 {
		t.Errorf("invalid proposals were stored: %d", len(pending))
	}
}

func TestConfirmSlotFirstWins(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	group, err := svc.ProposeSlots(ctx, "recruiter-1", models.ProposeSlotsRequest{
		RequesterID: "cand-42",
		Slots:       []models.SlotCandidate{candidate(16, 9), candidate(17, 14)},
	})
	if err != nil {
		t.Fatalf("ProposeSlots: %v", err)
	}

	confirmed, err := svc.ConfirmSlot(ctx, group.Slots[0].ID)
	if err != nil {
		t.Fatalf("ConfirmSlot: %v", err)
	}
	if confirmed.Status != models.SlotGroupConfirmed || confirmed.SelectedSlotID != group.Slots[0].ID {
		t.Errorf("confirmed = %+v", confirmed)
	}

	_, err = svc.ConfirmSlot(ctx, group.Slots[1].ID)
	if !errors.Is(err, interview.ErrGroupResolved) {
		t.Fatalf("second confirm err = %v, want ErrGroupResolved", err)
	}

	stored, err := svc.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup: %v", err)
	}
	if stored.SelectedSlotID != group.Slots[0].ID {
		t.Errorf("selected = %q, want first slot", stored.SelectedSlotID)
	}

	pending, _ := svc.ListPending(ctx, "")
	if len(pending) != 0 {
		t.Errorf("confirmed group still pending")
	}

	events := pub.types()
	if len(events) != 2 || events[1] != models.EventSlotConfirmed {
		t.Errorf("events = %v", events)
	}
	if pub.events[1].StartTime == nil || !pub.events[1].StartTime.Equal(group.Slots[0].StartTime) {
		t.Errorf("confirmed event start = %v", pub.events[1].StartTime)
	}
}

func TestConfirmUnknownSlot(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ConfirmSlot(context.Background(), "nope")
	if !interview.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if _, err := svc.ConfirmSlot(context.Background(), ""); !interview.IsValidation(err) {
		t.Fatalf("empty slot id err = %v, want validation", err)
	}
}

func TestRejectGroup(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	group, err := svc.ProposeSlots(ctx, "recruiter-1", models.ProposeSlotsRequest{
		RequesterID: "cand-42",
		Slots:       []models.SlotCandidate{candidate(16, 9)},
	})
	if err != nil {
		t.Fatalf("ProposeSlots: %v", err)
	}

	rejected, err := svc.RejectGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("RejectGroup: %v", err)
	}
	if rejected.Status != models.SlotGroupRejected || rejected.ResolvedAt == nil {
		t.Errorf("rejected = %+v", rejected)
	}
	if _, err := svc.ConfirmSlot(ctx, group.Slots[0].ID); !errors.Is(err, interview.ErrGroupResolved) {
		t.Errorf("confirm after reject err = %v", err)
	}
	if got := pub.types(); got[len(got)-1] != models.EventGroupRejected {
		t.Errorf("events = %v", got)
	}
}

func TestPublishFailureDoesNotFailProposal(t *testing.T) {
	svc, pub := newService(t)
	pub.err = errors.New("queue down")

	if _, err := svc.ProposeSlots(context.Background(), "recruiter-1", models.ProposeSlotsRequest{
		RequesterID: "cand-42",
		Slots:       []models.SlotCandidate{candidate(16, 9)},
	}); err != nil {
		t.Fatalf("ProposeSlots: %v", err)
	}
}

func TestMonthGrid(t *testing.T) {
	svc, _ := newService(t)

	grid, err := svc.MonthGrid(2025, 6)
	if err != nil {
		t.Fatalf("MonthGrid: %v", err)
	}
	if len(grid.Days)%7 != 0 {
		t.Errorf("grid length %d is not a multiple of 7", len(grid.Days))
	}
	if len(grid.TimeOptions) == 0 || grid.TimeOptions[0] != "9:00 AM" {
		t.Errorf("time options = %v", grid.TimeOptions)
	}
	if _, err := svc.MonthGrid(2025, 13); !interview.IsValidation(err) {
		t.Errorf("month 13 err = %v", err)
	}
}
