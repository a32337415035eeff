package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hirewire/models"
	"hirewire/services/scheduling"
	"hirewire/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDraftTTL is used when TTL is unset.
const DefaultDraftTTL = 30 * time.Minute

func NewDefaultDraftService(cache *redis.Client, interviews InterviewService, ttl time.Duration, logger *zap.Logger) *DefaultDraftService {
	return &DefaultDraftService{
		Cache:      cache,
		Interviews: interviews,
		TTL:        ttl,
		Now:        time.Now,
		Logger:     logger,
	}
}

func (s *DefaultDraftService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultDraftTTL
}

func (s *DefaultDraftService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func draftKey(draftID string) string {
	return utils.DraftCachePrefix + draftID
}

// OpenDraft starts an empty selection for a requester.
func (s *DefaultDraftService) OpenDraft(ctx context.Context, proposerID string, req models.OpenDraftRequest) (*models.SlotDraft, error) {
	if strings.TrimSpace(req.RequesterID) == "" {
		return nil, NewValidationError("requesterId is required")
	}
	draft := &models.SlotDraft{
		DraftID:     uuid.New().String(),
		ProposerID:  proposerID,
		RequesterID: req.RequesterID,
		Customer:    req.Customer,
		ResponderID: req.ResponderID,
		Candidates:  []models.SlotCandidate{},
		CreatedAt:   s.now().UTC(),
	}
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DefaultDraftService) GetDraft(ctx context.Context, proposerID, draftID string) (*models.SlotDraft, error) {
	return s.load(ctx, proposerID, draftID)
}

// AddDraftSlot resolves the picked day and time and adds it to the draft.
// The draft is unchanged when the candidate is invalid, a duplicate, or
// would exceed the slot limit.
func (s *DefaultDraftService) AddDraftSlot(ctx context.Context, proposerID, draftID string, req models.DraftSlotRequest) (*models.SlotDraft, error) {
	draft, err := s.load(ctx, proposerID, draftID)
	if err != nil {
		return nil, err
	}

	grid, err := s.Interviews.MonthGrid(req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	var candidate models.SlotCandidate
	now := s.now()
	if req.DayNumber > 0 {
		candidate, err = scheduling.BuildCandidate(grid.CalendarMonth, req.DayNumber, req.Time, now)
	} else {
		candidate, err = scheduling.BuildCandidateFromLabel(grid.CalendarMonth, req.DateLabel, req.Time, now)
	}
	if err != nil {
		return nil, err
	}

	sel, err := scheduling.NewSelection(draft.Candidates...)
	if err != nil {
		return nil, fmt.Errorf("stored draft is corrupt: %w", err)
	}
	if sel, err = sel.Add(candidate); err != nil {
		return nil, err
	}

	draft.Candidates = sel.Candidates()
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// RemoveDraftSlot drops a candidate. Removing one that is not present is a no-op.
func (s *DefaultDraftService) RemoveDraftSlot(ctx context.Context, proposerID, draftID string, req models.DraftSlotRemoval) (*models.SlotDraft, error) {
	draft, err := s.load(ctx, proposerID, draftID)
	if err != nil {
		return nil, err
	}

	timeLabel := req.Time
	if hour, err := scheduling.ParseTimeLabel(req.Time); err == nil {
		timeLabel = scheduling.FormatTimeLabel(hour)
	}

	sel, err := scheduling.NewSelection(draft.Candidates...)
	if err != nil {
		return nil, fmt.Errorf("stored draft is corrupt: %w", err)
	}
	draft.Candidates = sel.Remove(req.DateLabel, timeLabel).Candidates()
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SubmitDraft proposes the drafted candidates. The draft is deleted only
// once the proposal is stored, so a failed submit can be retried.
func (s *DefaultDraftService) SubmitDraft(ctx context.Context, proposerID, draftID string) (*models.SlotGroup, error) {
	draft, err := s.load(ctx, proposerID, draftID)
	if err != nil {
		return nil, err
	}
	if len(draft.Candidates) == 0 {
		return nil, NewValidationError("select at least one slot before submitting")
	}

	group, err := s.Interviews.ProposeSlots(ctx, proposerID, models.ProposeSlotsRequest{
		RequesterID: draft.RequesterID,
		Customer:    draft.Customer,
		ResponderID: draft.ResponderID,
		Slots:       draft.Candidates,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Del(ctx, draftKey(draftID)).Err(); err != nil {
		s.logger().Warn("Failed to delete submitted draft", zap.String("draftId", draftID), zap.Error(err))
	}
	return group, nil
}

func (s *DefaultDraftService) DiscardDraft(ctx context.Context, proposerID, draftID string) error {
	if _, err := s.load(ctx, proposerID, draftID); err != nil {
		return err
	}
	if err := s.Cache.Del(ctx, draftKey(draftID)).Err(); err != nil {
		return fmt.Errorf("failed to discard draft: %w", err)
	}
	return nil
}

// load fetches a draft owned by proposerID. Drafts of other proposers are
// reported as missing.
func (s *DefaultDraftService) load(ctx context.Context, proposerID, draftID string) (*models.SlotDraft, error) {
	data, err := s.Cache.Get(ctx, draftKey(draftID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var draft models.SlotDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}
	if draft.ProposerID != proposerID {
		return nil, ErrDraftNotFound
	}
	return &draft, nil
}

func (s *DefaultDraftService) save(ctx context.Context, draft *models.SlotDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.Cache.Set(ctx, draftKey(draft.DraftID), data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (s *DefaultDraftService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
