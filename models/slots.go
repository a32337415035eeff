package models

import (
	"errors"
	"time"
)

var (
	// ErrSlotGroupResolved is returned when a transition is attempted on a group
	// that is already Confirmed or Rejected.
	ErrSlotGroupResolved = errors.New("slot group already resolved")
	// ErrSlotNotInGroup is returned when a slot id does not belong to the group.
	ErrSlotNotInGroup = errors.New("slot does not belong to this group")
)

// SlotCandidate is one proposed interview time. Its JSON form is the wire
// shape sent to the proposal endpoint.
type SlotCandidate struct {
	DateLabel string    `bson:"date" json:"date"`                 // e.g., "Mon, Jan 20"
	TimeLabel string    `bson:"time" json:"time"`                 // e.g., "2:00 PM"
	Timestamp time.Time `bson:"fullDateTime" json:"fullDateTime"` // resolved absolute instant
}

// Key identifies a candidate within a selection.
func (c SlotCandidate) Key() string {
	return c.DateLabel + "|" + c.TimeLabel
}

// SlotGroupStatus is the resolution state of a negotiation.
type SlotGroupStatus string

const (
	SlotGroupPending   SlotGroupStatus = "pending"
	SlotGroupConfirmed SlotGroupStatus = "confirmed"
	SlotGroupRejected  SlotGroupStatus = "rejected"
)

// Customer is the requester a negotiation was opened for.
type Customer struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Slot is a persisted candidate inside a SlotGroup.
type Slot struct {
	ID        string    `bson:"id" json:"id"`
	DateLabel string    `bson:"date,omitempty" json:"date,omitempty"`
	TimeLabel string    `bson:"time,omitempty" json:"time,omitempty"`
	StartTime time.Time `bson:"startTime" json:"startTime"`
	EndTime   time.Time `bson:"endTime" json:"endTime"`
}

// SlotGroup is the persisted negotiation unit.
type SlotGroup struct {
	ID             string          `bson:"id" json:"slotGroupId"`
	Customer       Customer        `bson:"customer" json:"customer"`
	ProposerID     string          `bson:"proposerId,omitempty" json:"proposerId,omitempty"`
	ResponderID    string          `bson:"responderId,omitempty" json:"responderId,omitempty"`
	Slots          []Slot          `bson:"slots" json:"slots"`
	Status         SlotGroupStatus `bson:"status" json:"status"`
	SelectedSlotID string          `bson:"selectedSlotId,omitempty" json:"selectedSlotId,omitempty"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	ResolvedAt     *time.Time      `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}

// IsTerminal reports whether the group can no longer change.
func (g SlotGroup) IsTerminal() bool {
	return g.Status == SlotGroupConfirmed || g.Status == SlotGroupRejected
}

// Slot returns the slot with the given id.
func (g SlotGroup) Slot(slotID string) (Slot, bool) {
	for _, s := range g.Slots {
		if s.ID == slotID {
			return s, true
		}
	}
	return Slot{}, false
}

// HasSlot reports whether slotID is one of the group's slots.
func (g SlotGroup) HasSlot(slotID string) bool {
	_, ok := g.Slot(slotID)
	return ok
}

// Confirm moves a pending group to Confirmed with slotID selected.
func (g *SlotGroup) Confirm(slotID string, at time.Time) error {
	if g.IsTerminal() {
		return ErrSlotGroupResolved
	}
	if !g.HasSlot(slotID) {
		return ErrSlotNotInGroup
	}
	g.Status = SlotGroupConfirmed
	g.SelectedSlotID = slotID
	g.ResolvedAt = &at
	return nil
}

// Reject moves a pending group to Rejected.
func (g *SlotGroup) Reject(at time.Time) error {
	if g.IsTerminal() {
		return ErrSlotGroupResolved
	}
	g.Status = SlotGroupRejected
	g.ResolvedAt = &at
	return nil
}

// Clone returns a deep copy.
func (g SlotGroup) Clone() SlotGroup {
	out := g
	out.Slots = append([]Slot(nil), g.Slots...)
	if g.ResolvedAt != nil {
		t := *g.ResolvedAt
		out.ResolvedAt = &t
	}
	return out
}

// PendingSlot is the wire form of a slot in the pending listing.
type PendingSlot struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// PendingSlotGroup is the wire form of a group returned by the pending
// listing. Status is implied to be pending and therefore not serialized.
type PendingSlotGroup struct {
	SlotGroupID string        `json:"slotGroupId"`
	Customer    Customer      `json:"customer"`
	CreatedAt   time.Time     `json:"createdAt"`
	Slots       []PendingSlot `json:"slots"`
}

// ToPendingSlotGroup converts a stored group into its listing form.
func ToPendingSlotGroup(g SlotGroup) PendingSlotGroup {
	slots := make([]PendingSlot, 0, len(g.Slots))
	for _, s := range g.Slots {
		slots = append(slots, PendingSlot{ID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return PendingSlotGroup{
		SlotGroupID: g.ID,
		Customer:    g.Customer,
		CreatedAt:   g.CreatedAt,
		Slots:       slots,
	}
}

// ToSlotGroup converts a listing entry back into a pending SlotGroup.
func (p PendingSlotGroup) ToSlotGroup() SlotGroup {
	slots := make([]Slot, 0, len(p.Slots))
	for _, s := range p.Slots {
		slots = append(slots, Slot{ID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return SlotGroup{
		ID:        p.SlotGroupID,
		Customer:  p.Customer,
		Slots:     slots,
		Status:    SlotGroupPending,
		CreatedAt: p.CreatedAt,
	}
}

// ProposeSlotsRequest is the payload of the proposal endpoint.
type ProposeSlotsRequest struct {
	RequesterID string          `json:"requesterId"`
	Customer    *Customer       `json:"customer,omitempty"`
	ResponderID string          `json:"responderId,omitempty"`
	Slots       []SlotCandidate `json:"slots"`
}

// Ack is the acknowledgement returned by propose, confirm and reject.
type Ack struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	SlotGroupID string `json:"slotGroupId,omitempty"`
}
