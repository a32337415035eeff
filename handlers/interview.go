package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hirewire/middleware"
	"hirewire/models"
	"hirewire/services/interview"
	"hirewire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InterviewHandler serves the slot negotiation routes.
type InterviewHandler struct {
	Service interview.InterviewService
	Drafts  interview.DraftService
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewInterviewHandler(svc interview.InterviewService, drafts interview.DraftService, logger *zap.Logger) *InterviewHandler {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &InterviewHandler{Service: svc, Drafts: drafts, Logger: logger, Now: time.Now}
}

const resolvedMessage = "This interview has already been resolved. Refresh to see the final outcome."

// respondError maps service errors onto status codes and reason codes.
func (h *InterviewHandler) respondError(c *gin.Context, err error, action string) {
	var se *interview.SlotError
	switch {
	case errors.As(err, &se):
		utils.JSONError(c, http.StatusBadRequest, utils.ReasonValidationFailed, "Invalid request", se.Message)
	case interview.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, utils.ReasonValidationFailed, "Invalid request", err.Error())
	case interview.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, utils.ReasonNotFound, "Not found", err.Error())
	case errors.Is(err, interview.ErrGroupResolved):
		utils.JSONError(c, http.StatusConflict, utils.ReasonSlotGroupResolved, "Slot group already resolved", resolvedMessage)
	default:
		h.Logger.Error("Failed to "+action, zap.String("path", c.Request.URL.Path), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ReasonInternalError, "Failed to "+action, "An unexpected error occurred. Please try again later.")
	}
}

func (h *InterviewHandler) ProposeSlotsHandler(c *gin.Context) {
	var req models.ProposeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ReasonValidationFailed, "Invalid request payload", err.Error())
		return
	}

	group, err := h.Service.ProposeSlots(c.Request.Context(), middleware.PartyID(c), req)
	if err != nil {
		h.respondError(c, err, "propose interview slots")
		return
	}

	c.JSON(http.StatusCreated, models.Ack{
		Success:     true,
		Message:     "Interview slots proposed",
		SlotGroupID: group.ID,
	})
}

// GetPendingSlotsHandler returns a bare array of pending groups. The
// responderId query narrows the listing and defaults to the caller.
func (h *InterviewHandler) GetPendingSlotsHandler(c *gin.Context) {
	responderID := c.Query("responderId")
	if responderID == "" {
		responderID = middleware.PartyID(c)
	}

	groups, err := h.Service.ListPending(c.Request.Context(), responderID)
	if err != nil {
		h.respondError(c, err, "list pending slots")
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *InterviewHandler) ConfirmSlotHandler(c *gin.Context) {
	slotID := c.Param("slotId")

	group, err := h.Service.ConfirmSlot(c.Request.Context(), slotID)
	if err != nil {
		h.respondError(c, err, "confirm interview slot")
		return
	}

	c.JSON(http.StatusOK, models.Ack{
		Success:     true,
		Message:     "Interview slot confirmed",
		SlotGroupID: group.ID,
	})
}

func (h *InterviewHandler) RejectGroupHandler(c *gin.Context) {
	group, err := h.Service.RejectGroup(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		h.respondError(c, err, "reject slot group")
		return
	}

	c.JSON(http.StatusOK, models.Ack{
		Success:     true,
		Message:     "Slot group rejected",
		SlotGroupID: group.ID,
	})
}

// GetGroupHandler returns the authoritative state of one group, including
// resolved ones.
func (h *InterviewHandler) GetGroupHandler(c *gin.Context) {
	group, err := h.Service.GetGroup(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		h.respondError(c, err, "fetch slot group")
		return
	}
	c.JSON(http.StatusOK, group)
}

// CalendarHandler renders a month grid; year and month default to today.
func (h *InterviewHandler) CalendarHandler(c *gin.Context) {
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	year, month := now.Year(), int(now.Month())
	var err error
	if v := c.Query("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.ReasonValidationFailed, "Invalid request", "year must be a number")
			return
		}
	}
	if v := c.Query("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.ReasonValidationFailed, "Invalid request", "month must be a number")
			return
		}
	}

	grid, err := h.Service.MonthGrid(year, month)
	if err != nil {
		h.respondError(c, err, "render calendar")
		return
	}
	c.JSON(http.StatusOK, grid)
}
