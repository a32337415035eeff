package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Slot negotiation endpoints
	ProposeSlots    gin.HandlerFunc
	GetPendingSlots gin.HandlerFunc
	ConfirmSlot     gin.HandlerFunc
	RejectGroup     gin.HandlerFunc
	GetGroup        gin.HandlerFunc
	GetCalendar     gin.HandlerFunc

	// Draft endpoints
	OpenDraft       gin.HandlerFunc
	GetDraft        gin.HandlerFunc
	AddDraftSlot    gin.HandlerFunc
	RemoveDraftSlot gin.HandlerFunc
	SubmitDraft     gin.HandlerFunc
	DiscardDraft    gin.HandlerFunc

	// Health endpoint
	Health gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the interview handler.
func NewHandlerBundle(ih *InterviewHandler) *HandlerBundle {
	return &HandlerBundle{
		ProposeSlots:    ih.ProposeSlotsHandler,
		GetPendingSlots: ih.GetPendingSlotsHandler,
		ConfirmSlot:     ih.ConfirmSlotHandler,
		RejectGroup:     ih.RejectGroupHandler,
		GetGroup:        ih.GetGroupHandler,
		GetCalendar:     ih.CalendarHandler,

		OpenDraft:       ih.OpenDraftHandler,
		GetDraft:        ih.GetDraftHandler,
		AddDraftSlot:    ih.AddDraftSlotHandler,
		RemoveDraftSlot: ih.RemoveDraftSlotHandler,
		SubmitDraft:     ih.SubmitDraftHandler,
		DiscardDraft:    ih.DiscardDraftHandler,

		Health: HealthHandler,
	}
}
