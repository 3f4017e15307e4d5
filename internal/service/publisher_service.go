package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EventsTopic is the in-process topic every domain event is published on.
const EventsTopic = "wellness.events"

// IPublisherService emits domain events. Publishing is best effort: callers
// log failures and carry on.
type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

// EventSink forwards events outside the process (NATS JetStream in production).
type EventSink interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    message.Publisher
	sink      EventSink
	logger    logger.ILogger
}

// NewPublisherService accepts a nil sink when no external bus is configured.
func NewPublisherService(topicName string, pubSub message.Publisher, sink EventSink, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		sink:      sink,
		logger:    log,
	}
}

func (p *publisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(events.BaseEvent{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", event.EventType())

	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		return fmt.Errorf("publish event %s: %w", event.EventType(), err)
	}

	if p.sink != nil {
		if err := p.sink.Publish(ctx, event); err != nil {
			p.logger.Warn("PUBLISHER", "Failed to forward event to external bus", map[string]interface{}{
				"event_type": event.EventType(),
				"error":      err.Error(),
			})
		}
	}
	return nil
}

// publishQuietly is used by services where the event is auxiliary to the request.
func publishQuietly(ctx context.Context, publisher IPublisherService, log logger.ILogger, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("PUBLISHER", "Failed to publish event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}
}
