package interview

import (
	"context"
	"time"

	slotgroupRepo "hirewire/database/repository/slotgroup"
	"hirewire/models"
	"hirewire/services/scheduling"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InterviewService owns slot groups on the backend.
type InterviewService interface {
	ProposeSlots(ctx context.Context, proposerID string, req models.ProposeSlotsRequest) (*models.SlotGroup, error)
	ListPending(ctx context.Context, responderID string) ([]models.PendingSlotGroup, error)
	GetGroup(ctx context.Context, groupID string) (*models.SlotGroup, error)
	ConfirmSlot(ctx context.Context, slotID string) (*models.SlotGroup, error)
	RejectGroup(ctx context.Context, groupID string) (*models.SlotGroup, error)
	MonthGrid(year, month int) (models.CalendarResponse, error)
}

// DraftService keeps a proposer's selection between requests.
type DraftService interface {
	OpenDraft(ctx context.Context, proposerID string, req models.OpenDraftRequest) (*models.SlotDraft, error)
	GetDraft(ctx context.Context, proposerID, draftID string) (*models.SlotDraft, error)
	AddDraftSlot(ctx context.Context, proposerID, draftID string, req models.DraftSlotRequest) (*models.SlotDraft, error)
	RemoveDraftSlot(ctx context.Context, proposerID, draftID string, req models.DraftSlotRemoval) (*models.SlotDraft, error)
	SubmitDraft(ctx context.Context, proposerID, draftID string) (*models.SlotGroup, error)
	DiscardDraft(ctx context.Context, proposerID, draftID string) error
}

// DefaultInterviewService implements InterviewService.
type DefaultInterviewService struct {
	Repo         slotgroupRepo.SlotGroupRepository
	Events       EventPublisher
	BusinessDays scheduling.BusinessCalendar
	SlotDuration time.Duration
	Now          func() time.Time
	Logger       *zap.Logger
}

// DefaultDraftService implements DraftService on Redis.
type DefaultDraftService struct {
	Cache      *redis.Client
	Interviews InterviewService
	TTL        time.Duration
	Now        func() time.Time
	Logger     *zap.Logger
}
