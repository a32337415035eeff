package scheduling

import "errors"

var (
	// ErrInvalidSlot is returned when a picked day or time cannot be resolved.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrMaxSlotsExceeded is returned when a selection already holds MaxSlots candidates.
	ErrMaxSlotsExceeded = errors.New("maximum number of interview slots reached")
	// ErrDuplicateSlot is returned when the same date and time is picked twice.
	ErrDuplicateSlot = errors.New("interview slot already selected")
)
