package models

import "time"

// Interview event types published on the task queue.
const (
	EventSlotsProposed = "interview:proposed"
	EventSlotConfirmed = "interview:confirmed"
	EventGroupRejected = "interview:rejected"
	EventReminder      = "interview:reminder"
)

// InterviewEvent describes a negotiation transition for downstream
// notification delivery.
type InterviewEvent struct {
	Type        string     `json:"type"`
	SlotGroupID string     `json:"slotGroupId"`
	SlotID      string     `json:"slotId,omitempty"`
	CustomerID  string     `json:"customerId"`
	ProposerID  string     `json:"proposerId,omitempty"`
	ResponderID string     `json:"responderId,omitempty"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}
