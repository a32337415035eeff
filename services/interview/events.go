package interview

import (
	"context"

	"hirewire/models"
)

// EventPublisher hands negotiation transitions to downstream delivery.
type EventPublisher interface {
	Publish(ctx context.Context, event models.InterviewEvent) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.InterviewEvent) error { return nil }
