package negotiation

import (
	"context"
	"sync"
	"time"

	"hirewire/config"
	"hirewire/models"

	"go.uber.org/zap"
)

// SlotAPI is the backend boundary of the negotiation workflow.
type SlotAPI interface {
	ProposeInterviewSlots(ctx context.Context, requesterID string, slots []models.SlotCandidate) (models.Ack, error)
	GetPendingSlots(ctx context.Context, responderID string) ([]models.PendingSlotGroup, error)
	ConfirmInterviewSlot(ctx context.Context, slotID string) (models.Ack, error)
	RejectSlotGroup(ctx context.Context, groupID string) (models.Ack, error)
}

// DefaultTimeout bounds every call across the boundary when neither the
// component nor CLIENT_TIMEOUT sets one.
const DefaultTimeout = 15 * time.Second

// ResolveTimeout returns d when positive, else the configured
// CLIENT_TIMEOUT, else DefaultTimeout.
func ResolveTimeout(d time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	if config.AppConfig.ClientTimeout > 0 {
		return config.AppConfig.ClientTimeout
	}
	return DefaultTimeout
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, ResolveTimeout(d))
}

// inFlight tracks keys with an outstanding request so the same actor cannot
// submit twice while the first call is pending.
type inFlight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func (f *inFlight) begin(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keys == nil {
		f.keys = make(map[string]struct{})
	}
	if _, busy := f.keys[key]; busy {
		return false
	}
	f.keys[key] = struct{}{}
	return true
}

func (f *inFlight) end(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, key)
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
