// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"drivetube-be/internal/dto"
	"drivetube-be/internal/entity"
	"drivetube-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
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
	var payload dto.PublishAccessDecisionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Sending access decision email for request %s", payload.RequestId)

	var err error
	switch entity.AccessRequestStatus(payload.Status) {
	case entity.AccessRequestStatusApproved:
		err = cs.emailService.SendAccessApproved(payload.UserEmail, payload.CourseName)
	case entity.AccessRequestStatusRejected:
		err = cs.emailService.SendAccessRejected(payload.UserEmail, payload.CourseName)
	default:
		log.Printf("[ERROR] Unknown decision status %q", payload.Status)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Failed to send decision email to %s: %v", payload.UserEmail, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
