package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hirewire/models"

	"github.com/hibiken/asynq"
)

// TypeInterviewReminder fires shortly before a confirmed interview starts.
const TypeInterviewReminder = models.EventReminder

// ReminderLead is how long before the interview the reminder fires.
const ReminderLead = time.Hour

func NewInterviewEventTask(event models.InterviewEvent) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(event.Type, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}

func NewInterviewReminderTask(event models.InterviewEvent, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	event.Type = TypeInterviewReminder
	b, err := json.Marshal(event)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeInterviewReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.MaxRetry(3)}

	return task, opts, nil
}

// Enqueuer is the subset of *asynq.Client used to publish events.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqPublisher enqueues interview events for the notification worker.
// A confirmation also schedules a reminder ReminderLead before the start.
type AsynqPublisher struct {
	Client Enqueuer
	Now    func() time.Time
}

func NewAsynqPublisher(client Enqueuer) *AsynqPublisher {
	return &AsynqPublisher{Client: client, Now: time.Now}
}

func (p *AsynqPublisher) Publish(ctx context.Context, event models.InterviewEvent) error {
	task, opts, err := NewInterviewEventTask(event)
	if err != nil {
		return fmt.Errorf("failed to build %s task: %w", event.Type, err)
	}
	if _, err := p.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", event.Type, err)
	}

	if event.Type != models.EventSlotConfirmed || event.StartTime == nil {
		return nil
	}
	fireAt := event.StartTime.Add(-ReminderLead)
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}
	if !fireAt.After(now) {
		return nil
	}
	task, opts, err = NewInterviewReminderTask(event, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := p.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
