package negotiation

import (
	"context"
	"strings"
	"time"

	"hirewire/models"
	"hirewire/services/scheduling"

	"go.uber.org/zap"
)

// Submitter ships a finished selection to the proposal endpoint.
type Submitter struct {
	API     SlotAPI
	Timeout time.Duration
	Logger  *zap.Logger

	pending inFlight
}

// NewSubmitter returns a Submitter bound to api.
func NewSubmitter(api SlotAPI, timeout time.Duration, logger *zap.Logger) *Submitter {
	return &Submitter{API: api, Timeout: timeout, Logger: loggerOrNop(logger)}
}

// Submit proposes the selected candidates for requesterID. Preconditions are
// checked before any network call. On failure the caller keeps its selection
// so the user can retry; nothing is retried automatically.
func (s *Submitter) Submit(ctx context.Context, requesterID string, sel scheduling.Selection) (models.Ack, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return models.Ack{}, validationError(ErrMissingRequester)
	}
	if sel.Len() == 0 {
		return models.Ack{}, validationError(ErrEmptySelection)
	}
	if !s.pending.begin(requesterID) {
		return models.Ack{}, validationError(ErrRequestInFlight)
	}
	defer s.pending.end(requesterID)

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	ack, err := s.API.ProposeInterviewSlots(ctx, requesterID, sel.Candidates())
	if err != nil {
		loggerOrNop(s.Logger).Warn("interview slot proposal failed",
			zap.String("requesterId", requesterID), zap.Int("slots", sel.Len()), zap.Error(err))
		return models.Ack{}, classify(err)
	}
	if !ack.Success {
		return ack, networkError(&APIError{StatusCode: 200, Message: ack.Message})
	}

	loggerOrNop(s.Logger).Info("interview slots proposed",
		zap.String("requesterId", requesterID), zap.String("slotGroupId", ack.SlotGroupID))
	return ack, nil
}
