// File: utils/constants.go
package utils

// DraftCachePrefix is the prefix used for Redis draft selection keys.
const DraftCachePrefix = "draft:"

// Reason codes returned in error bodies so clients can branch without
// parsing messages.
const (
	ReasonValidationFailed  = "validation_failed"
	ReasonNotFound          = "not_found"
	ReasonSlotGroupResolved = "slot_group_resolved"
	ReasonUnauthenticated   = "unauthenticated"
	ReasonForbidden         = "forbidden"
	ReasonRateLimited       = "rate_limited"
	ReasonInternalError     = "internal_error"
)
