package notification

import (
	"context"
	"fmt"
	"time"

	"hirewire/models"

	"go.uber.org/zap"
)

// NotificationService turns interview events into messages for the parties.
type NotificationService interface {
	NotifyInterviewEvent(ctx context.Context, event models.InterviewEvent) error
}

// Sender delivers one message to one party. Push, email and chat
// integrations live behind it.
type Sender interface {
	Send(ctx context.Context, recipientID, title, body string, data map[string]string) error
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	Logger *zap.Logger
}

func (s LogSender) Send(_ context.Context, recipientID, title, body string, data map[string]string) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Info("Notification",
		zap.String("recipient", recipientID),
		zap.String("title", title),
		zap.String("body", body),
		zap.Any("data", data))
	return nil
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Sender Sender
}

func NewDefaultNotificationService(sender Sender) (*DefaultNotificationService, error) {
	if sender == nil {
		return nil, fmt.Errorf("notification service initialization error: sender is nil")
	}
	return &DefaultNotificationService{Sender: sender}, nil
}

// NotifyInterviewEvent messages everyone who has to act on or learn about
// the transition. Parties without an id are skipped.
func (s *DefaultNotificationService) NotifyInterviewEvent(ctx context.Context, event models.InterviewEvent) error {
	data := map[string]string{
		"type":        event.Type,
		"slotGroupId": event.SlotGroupID,
	}
	if event.SlotID != "" {
		data["slotId"] = event.SlotID
	}

	var (
		title      string
		body       string
		recipients []string
	)
	switch event.Type {
	case models.EventSlotsProposed:
		title = "New interview times to review 🗓️"
		body = "You have been offered interview times. Pick the one that works best."
		recipients = []string{event.ResponderID}
		if event.ResponderID == "" {
			recipients = []string{event.CustomerID}
		}
	case models.EventSlotConfirmed:
		title = "Interview confirmed ✅"
		body = "Your interview is confirmed" + when(event.StartTime) + "."
		recipients = []string{event.ProposerID, event.CustomerID}
	case models.EventGroupRejected:
		title = "Interview times declined"
		body = "None of the proposed interview times worked. Propose new times to continue."
		recipients = []string{event.ProposerID}
	case models.EventReminder:
		title = "Interview starting soon ⏰"
		body = "Reminder: your interview starts" + when(event.StartTime) + "."
		recipients = []string{event.ProposerID, event.CustomerID}
	default:
		return fmt.Errorf("NotifyInterviewEvent: unknown event type %q", event.Type)
	}

	sent := map[string]bool{}
	for _, id := range recipients {
		if id == "" || sent[id] {
			continue
		}
		sent[id] = true
		if err := s.Sender.Send(ctx, id, title, body, data); err != nil {
			return fmt.Errorf("NotifyInterviewEvent: failed to notify %s: %w", id, err)
		}
	}
	return nil
}

func when(start *time.Time) string {
	if start == nil {
		return ""
	}
	return " for " + start.UTC().Format("Mon, Jan 2 at 3:04 PM UTC")
}
