package interview

import (
	"errors"
	"fmt"

	slotgroupRepo "hirewire/database/repository/slotgroup"
	"hirewire/models"
	"hirewire/services/scheduling"
)

type SlotError struct {
	Code    string
	Message string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &SlotError{
		Code:    "validationError",
		Message: msg,
	}
}

var (
	ErrNotFound      = slotgroupRepo.ErrNotFound
	ErrGroupResolved = models.ErrSlotGroupResolved
	ErrDraftNotFound = errors.New("draft not found or expired")
)

// IsValidation reports whether err was caused by bad input.
func IsValidation(err error) bool {
	var se *SlotError
	if errors.As(err, &se) && se.Code == "validationError" {
		return true
	}
	return errors.Is(err, scheduling.ErrInvalidSlot) ||
		errors.Is(err, scheduling.ErrMaxSlotsExceeded) ||
		errors.Is(err, scheduling.ErrDuplicateSlot) ||
		errors.Is(err, models.ErrSlotNotInGroup)
}

// IsNotFound reports whether err refers to a missing group or draft.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrDraftNotFound)
}
