package service

import (
	"context"
	"encoding/json"

	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the audit topic and writes the ingestion and
// generation audit trail to the structured log.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.AuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("audit", "failed to unmarshal audit message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	cs.log.Info("audit", payload.Action, map[string]interface{}{
		"file_id":     payload.FileId.String(),
		"filename":    payload.Filename,
		"detail":      payload.Detail,
		"occurred_at": payload.OccurredAt,
	})
	msg.Ack()
}
