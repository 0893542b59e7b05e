package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/nani454554/portfolio/internal/domain"
)

// TrackingPublisher defines the interface for publishing tracking events to a queue
type TrackingPublisher interface {
	PublishTrackingEvent(ctx context.Context, event *domain.TrackingEvent) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	ChangeMessageVisibility(ctx context.Context, input *sqs.ChangeMessageVisibilityInput) (*sqs.ChangeMessageVisibilityOutput, error)
	QueueURL() string
}

// NopPublisher discards events. It stands in when no queue is configured.
type NopPublisher struct{}

// PublishTrackingEvent does nothing
func (NopPublisher) PublishTrackingEvent(context.Context, *domain.TrackingEvent) error {
	return nil
}
