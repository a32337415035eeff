package handlers

import (
	"net/http"

	"hirewire/middleware"
	"hirewire/models"
	"hirewire/utils"

	"github.com/gin-gonic/gin"
)

func (h *InterviewHandler) OpenDraftHandler(c *gin.Context) {
	var req models.OpenDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ReasonValidationFailed, "Invalid request payload", err.Error())
		return
	}

	draft, err := h.Drafts.OpenDraft(c.Request.Context(), middleware.PartyID(c), req)
	if err != nil {
		h.respondError(c, err, "open draft")
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (h *InterviewHandler) GetDraftHandler(c *gin.Context) {
	draft, err := h.Drafts.GetDraft(c.Request.Context(), middleware.PartyID(c), c.Param("draftId"))
	if err != nil {
		h.respondError(c, err, "fetch draft")
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *InterviewHandler) AddDraftSlotHandler(c *gin.Context) {
	var req models.DraftSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ReasonValidationFailed, "Invalid request payload", err.Error())
		return
	}

	draft, err := h.Drafts.AddDraftSlot(c.Request.Context(), middleware.PartyID(c), c.Param("draftId"), req)
	if err != nil {
		h.respondError(c, err, "add draft slot")
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *InterviewHandler) RemoveDraftSlotHandler(c *gin.Context) {
	var req models.DraftSlotRemoval
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ReasonValidationFailed, "Invalid request payload", err.Error())
		return
	}

	draft, err := h.Drafts.RemoveDraftSlot(c.Request.Context(), middleware.PartyID(c), c.Param("draftId"), req)
	if err != nil {
		h.respondError(c, err, "remove draft slot")
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *InterviewHandler) SubmitDraftHandler(c *gin.Context) {
	group, err := h.Drafts.SubmitDraft(c.Request.Context(), middleware.PartyID(c), c.Param("draftId"))
	if err != nil {
		h.respondError(c, err, "submit draft")
		return
	}
	c.JSON(http.StatusCreated, models.Ack{
		Success:     true,
		Message:     "Interview slots proposed",
		SlotGroupID: group.ID,
	})
}

func (h *InterviewHandler) DiscardDraftHandler(c *gin.Context) {
	if err := h.Drafts.DiscardDraft(c.Request.Context(), middleware.PartyID(c), c.Param("draftId")); err != nil {
		h.respondError(c, err, "discard draft")
		return
	}
	c.JSON(http.StatusOK, models.Ack{Success: true, Message: "Draft discarded"})
}
