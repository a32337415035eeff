package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	slotgroupRepo "hirewire/database/repository/slotgroup"
	"hirewire/models"
	"hirewire/services/scheduling"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSlotDuration is used when SlotDuration is unset.
const DefaultSlotDuration = time.Hour

// NewDefaultInterviewService wires a service with the given collaborators.
// events may be nil.
func NewDefaultInterviewService(
	repo slotgroupRepo.SlotGroupRepository,
	events EventPublisher,
	days scheduling.BusinessCalendar,
	slotDuration time.Duration,
	logger *zap.Logger,
) *DefaultInterviewService {
	if events == nil {
		events = NopPublisher{}
	}
	return &DefaultInterviewService{
		Repo:         repo,
		Events:       events,
		BusinessDays: days,
		SlotDuration: slotDuration,
		Now:          time.Now,
		Logger:       logger,
	}
}

func (s *DefaultInterviewService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultInterviewService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

func (s *DefaultInterviewService) duration() time.Duration {
	if s.SlotDuration > 0 {
		return s.SlotDuration
	}
	return DefaultSlotDuration
}

// ProposeSlots validates and persists a new pending slot group.
func (s *DefaultInterviewService) ProposeSlots(ctx context.Context, proposerID string, req models.ProposeSlotsRequest) (*models.SlotGroup, error) {
	requesterID := strings.TrimSpace(req.RequesterID)
	if requesterID == "" {
		return nil, NewValidationError("requesterId is required")
	}
	if len(req.Slots) == 0 {
		return nil, NewValidationError("at least one slot is required")
	}

	now := s.now()
	sel := scheduling.Selection{}
	seen := make(map[int64]struct{}, len(req.Slots))
	for i, c := range req.Slots {
		if c.Timestamp.IsZero() {
			return nil, NewValidationError(fmt.Sprintf("slot %d: fullDateTime is required", i+1))
		}
		if !c.Timestamp.After(now) {
			return nil, NewValidationError(fmt.Sprintf("slot %d: %s is not in the future", i+1, c.Timestamp.Format(time.RFC3339)))
		}
		if _, dup := seen[c.Timestamp.Unix()]; dup {
			return nil, fmt.Errorf("%w: slot %d repeats an earlier time", scheduling.ErrDuplicateSlot, i+1)
		}
		seen[c.Timestamp.Unix()] = struct{}{}

		var err error
		if sel, err = sel.Add(withLabels(c)); err != nil {
			return nil, err
		}
	}

	customer := models.Customer{ID: requesterID}
	if req.Customer != nil {
		customer = *req.Customer
		customer.ID = requesterID
	}

	group := &models.SlotGroup{
		ID:          uuid.New().String(),
		Customer:    customer,
		ProposerID:  proposerID,
		ResponderID: req.ResponderID,
		Status:      models.SlotGroupPending,
		CreatedAt:   now.UTC(),
	}
	for _, c := range sel.Candidates() {
		group.Slots = append(group.Slots, models.Slot{
			ID:        uuid.New().String(),
			DateLabel: c.DateLabel,
			TimeLabel: c.TimeLabel,
			StartTime: c.Timestamp.UTC(),
			EndTime:   c.Timestamp.Add(s.duration()).UTC(),
		})
	}

	if err := s.Repo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to store slot group: %w", err)
	}

	s.logger().Info("Slot group proposed",
		zap.String("slotGroupId", group.ID),
		zap.String("requesterId", requesterID),
		zap.Int("slots", len(group.Slots)))
	s.publish(ctx, models.EventSlotsProposed, group, "")
	return group, nil
}

// withLabels fills missing display labels from the timestamp.
func withLabels(c models.SlotCandidate) models.SlotCandidate {
	if c.DateLabel == "" {
		c.DateLabel = c.Timestamp.Format(scheduling.DateLabelLayout)
	}
	if c.TimeLabel == "" {
		c.TimeLabel = c.Timestamp.Format("3:04 PM")
	}
	return c
}

// ListPending returns pending groups visible to responderID, oldest first.
func (s *DefaultInterviewService) ListPending(ctx context.Context, responderID string) ([]models.PendingSlotGroup, error) {
	groups, err := s.Repo.ListPending(ctx, responderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending slot groups: %w", err)
	}
	out := make([]models.PendingSlotGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.ToPendingSlotGroup(g))
	}
	return out, nil
}

func (s *DefaultInterviewService) GetGroup(ctx context.Context, groupID string) (*models.SlotGroup, error) {
	if strings.TrimSpace(groupID) == "" {
		return nil, NewValidationError("slotGroupId is required")
	}
	return s.Repo.GetByID(ctx, groupID)
}

// ConfirmSlot resolves the owning group in favour of slotID. Only the first
// confirmation of a pending group succeeds; later ones get ErrGroupResolved.
func (s *DefaultInterviewService) ConfirmSlot(ctx context.Context, slotID string) (*models.SlotGroup, error) {
	if strings.TrimSpace(slotID) == "" {
		return nil, NewValidationError("slotId is required")
	}
	group, err := s.Repo.ConfirmSlot(ctx, slotID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger().Info("Interview slot confirmed",
		zap.String("slotGroupId", group.ID),
		zap.String("slotId", slotID))
	s.publish(ctx, models.EventSlotConfirmed, group, slotID)
	return group, nil
}

// RejectGroup resolves a pending group without choosing a slot.
func (s *DefaultInterviewService) RejectGroup(ctx context.Context, groupID string) (*models.SlotGroup, error) {
	if strings.TrimSpace(groupID) == "" {
		return nil, NewValidationError("slotGroupId is required")
	}
	group, err := s.Repo.Reject(ctx, groupID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger().Info("Slot group rejected", zap.String("slotGroupId", group.ID))
	s.publish(ctx, models.EventGroupRejected, group, "")
	return group, nil
}

// MonthGrid renders the calendar for a month along with the offered times.
func (s *DefaultInterviewService) MonthGrid(year, month int) (models.CalendarResponse, error) {
	if month < 1 || month > 12 {
		return models.CalendarResponse{}, NewValidationError("month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return models.CalendarResponse{}, NewValidationError("year is out of range")
	}
	return models.CalendarResponse{
		CalendarMonth: s.BusinessDays.GenerateMonth(year, time.Month(month), s.now()),
		TimeOptions:   scheduling.DefaultTimeOptions(),
	}, nil
}

// publish is best effort; the group is already stored.
func (s *DefaultInterviewService) publish(ctx context.Context, eventType string, group *models.SlotGroup, slotID string) {
	if s.Events == nil {
		return
	}
	event := models.InterviewEvent{
		Type:        eventType,
		SlotGroupID: group.ID,
		SlotID:      slotID,
		CustomerID:  group.Customer.ID,
		ProposerID:  group.ProposerID,
		ResponderID: group.ResponderID,
		OccurredAt:  s.now().UTC(),
	}
	if slot, ok := group.Slot(slotID); ok {
		start := slot.StartTime
		event.StartTime = &start
	}
	if err := s.Events.Publish(ctx, event); err != nil {
		s.logger().Warn("Failed to publish interview event",
			zap.String("type", eventType),
			zap.String("slotGroupId", group.ID),
			zap.Error(err))
	}
}
