package service

import (
	"context"
	"encoding/json"

	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/internal/pkg/mailer"
	"mindfulme-be/internal/pkg/metrics"
	"mindfulme-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const FeedMessageCommunityPost = "community_post"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// FeedBroadcaster pushes a typed message to every live feed subscriber.
type FeedBroadcaster interface {
	Publish(ctx context.Context, msgType string, data interface{}) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	mailer     mailer.IEmailService
	feed       FeedBroadcaster
	logger     logger.ILogger
}

// NewConsumerService accepts a nil mailer when SMTP is not configured.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	emailService mailer.IEmailService,
	feed FeedBroadcaster,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		mailer:     emailService,
		feed:       feed,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: side effects here are notifications, and a
// redelivery loop on the in-process channel would only repeat the failure.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal event", map[string]interface{}{"error": err.Error(), "message_id": msg.UUID})
		return
	}

	metrics.RecordEvent(event.Type)

	switch event.Type {
	case events.TypeUserCreated:
		cs.sendWelcome(event)
	case events.TypeCommunityPostCreated:
		if cs.feed == nil {
			return
		}
		if err := cs.feed.Publish(ctx, FeedMessageCommunityPost, event.Data["post"]); err != nil {
			cs.logger.Warn("CONSUMER", "Failed to broadcast community post", map[string]interface{}{"error": err.Error()})
		}
	default:
		cs.logger.Debug("CONSUMER", "Event recorded", map[string]interface{}{"event_type": event.Type})
	}
}

func (cs *consumerService) sendWelcome(event events.BaseEvent) {
	if cs.mailer == nil {
		return
	}
	email, _ := event.Data["email"].(string)
	name, _ := event.Data["name"].(string)
	if email == "" {
		return
	}
	if err := cs.mailer.SendWelcome(email, name); err != nil {
		cs.logger.Warn("CONSUMER", "Failed to send welcome email", map[string]interface{}{"error": err.Error(), "email": email})
		return
	}
	cs.logger.Info("CONSUMER", "Welcome email sent", map[string]interface{}{"email": email})
}
