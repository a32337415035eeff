package negotiation

import (
	"context"
	"errors"
	"fmt"

	"hirewire/models"
	"hirewire/services/scheduling"
)

// ErrorKind classifies a negotiation failure for display.
type ErrorKind string

const (
	// KindValidation is a caller-side precondition caught before any network call.
	KindValidation ErrorKind = "validation"
	// KindNetwork is a transport failure or a non-success backend response.
	KindNetwork ErrorKind = "network"
	// KindConflict means the group was already resolved by another actor.
	KindConflict ErrorKind = "conflict"
)

// ReasonSlotGroupResolved is the backend reason code for a confirm or reject
// that lost the race against another actor.
const ReasonSlotGroupResolved = "slot_group_resolved"

var (
	ErrMissingRequester = errors.New("a requester is required to propose interview slots")
	ErrEmptySelection   = errors.New("select at least one interview slot")
	ErrNoSlotSelected   = errors.New("select an interview slot before confirming")
	ErrRequestInFlight  = errors.New("a request for this negotiation is already in progress")
	ErrGroupNotFound    = errors.New("interview slot group not found")
	ErrGroupResolved    = models.ErrSlotGroupResolved
)

const (
	networkFallbackMessage  = "Unable to reach the scheduling service. Please try again."
	conflictFallbackMessage = "This interview has already been scheduled. Refresh to see its current status."
)

// Error is the single error type surfaced by the submitter, registry and
// confirmer. Message is safe to show to the user.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// APIError is returned by a SlotAPI for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	ReasonCode string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("scheduling service returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("scheduling service returned %d", e.StatusCode)
}

// IsConflict reports whether the backend refused because the group was
// already resolved.
func (e *APIError) IsConflict() bool {
	return e.StatusCode == 409 || e.ReasonCode == ReasonSlotGroupResolved
}

func validationError(err error) *Error {
	return &Error{Kind: KindValidation, Message: err.Error(), Err: err}
}

func conflictError(err error) *Error {
	msg := conflictFallbackMessage
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

func networkError(err error) *Error {
	msg := networkFallbackMessage
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	} else if errors.Is(err, context.DeadlineExceeded) {
		msg = "The scheduling service took too long to respond. Please try again."
	}
	return &Error{Kind: KindNetwork, Message: msg, Err: err}
}

// classify turns a SlotAPI error into a negotiation Error.
func classify(err error) *Error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsConflict() {
		return conflictError(err)
	}
	return networkError(err)
}

// KindOf returns the kind of err. Selection errors from the scheduling
// package count as validation failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, scheduling.ErrDuplicateSlot),
		errors.Is(err, scheduling.ErrMaxSlotsExceeded),
		errors.Is(err, scheduling.ErrInvalidSlot):
		return KindValidation
	}
	return KindNetwork
}

// IsConflict reports whether err means the group must be re-fetched.
func IsConflict(err error) bool {
	return err != nil && KindOf(err) == KindConflict
}

// DisplayMessage renders err as the single line shown to the user.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
