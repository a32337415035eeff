package models

import "time"

// SlotDraft holds a proposer's in-progress selection between requests.
type SlotDraft struct {
	DraftID     string          `json:"draftId"`
	ProposerID  string          `json:"proposerId"`
	RequesterID string          `json:"requesterId"`
	Customer    *Customer       `json:"customer,omitempty"`
	ResponderID string          `json:"responderId,omitempty"`
	Candidates  []SlotCandidate `json:"candidates"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// OpenDraftRequest starts a draft for a requester.
type OpenDraftRequest struct {
	RequesterID string    `json:"requesterId" binding:"required"`
	Customer    *Customer `json:"customer,omitempty"`
	ResponderID string    `json:"responderId,omitempty"`
}

// DraftSlotRequest adds one picked day/time to a draft. DayNumber is
// preferred; DateLabel is resolved against the displayed month otherwise.
type DraftSlotRequest struct {
	Year      int    `json:"year" binding:"required"`
	Month     int    `json:"month" binding:"required,min=1,max=12"`
	DayNumber int    `json:"dayNumber,omitempty"`
	DateLabel string `json:"dateLabel,omitempty"`
	Time      string `json:"time" binding:"required"`
}

// DraftSlotRemoval removes a candidate by its labels.
type DraftSlotRemoval struct {
	DateLabel string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}
