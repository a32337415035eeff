package scheduling

import (
	"fmt"

	"hirewire/models"
)

// MaxSlots is the largest number of candidates a proposal may carry.
const MaxSlots = 3

// Selection is the ordered set of candidates being composed for one
// negotiation. It is a value: Add and Remove return a new Selection and
// never modify the receiver.
type Selection struct {
	candidates []models.SlotCandidate
}

// NewSelection builds a selection by adding each candidate in order.
func NewSelection(candidates ...models.SlotCandidate) (Selection, error) {
	var sel Selection
	for _, c := range candidates {
		next, err := sel.Add(c)
		if err != nil {
			return sel, err
		}
		sel = next
	}
	return sel, nil
}

// Add appends c. It fails with ErrDuplicateSlot when the same date and time
// is already present and with ErrMaxSlotsExceeded when the selection is full.
// On failure the receiver is returned unchanged.
func (s Selection) Add(c models.SlotCandidate) (Selection, error) {
	if s.Contains(c.DateLabel, c.TimeLabel) {
		return s, fmt.Errorf("%w: %s at %s", ErrDuplicateSlot, c.DateLabel, c.TimeLabel)
	}
	if len(s.candidates) >= MaxSlots {
		return s, fmt.Errorf("%w: at most %d slots can be proposed", ErrMaxSlotsExceeded, MaxSlots)
	}
	next := make([]models.SlotCandidate, len(s.candidates), len(s.candidates)+1)
	copy(next, s.candidates)
	return Selection{candidates: append(next, c)}, nil
}

// Remove drops the candidate with the given labels. Removing an absent
// candidate is a no-op.
func (s Selection) Remove(dateLabel, timeLabel string) Selection {
	next := make([]models.SlotCandidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		if c.DateLabel == dateLabel && c.TimeLabel == timeLabel {
			continue
		}
		next = append(next, c)
	}
	return Selection{candidates: next}
}

// Contains reports whether a candidate with these labels is selected.
func (s Selection) Contains(dateLabel, timeLabel string) bool {
	for _, c := range s.candidates {
		if c.DateLabel == dateLabel && c.TimeLabel == timeLabel {
			return true
		}
	}
	return false
}

// Len returns the number of selected candidates.
func (s Selection) Len() int {
	return len(s.candidates)
}

// Candidates returns a copy of the candidates in insertion order.
func (s Selection) Candidates() []models.SlotCandidate {
	return append([]models.SlotCandidate(nil), s.candidates...)
}
