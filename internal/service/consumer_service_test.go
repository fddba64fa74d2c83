// FILE: internal/service/consumer_service_test.go
package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"drivetube-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConsumerDeliversDecisionEmails(t *testing.T) {
	const topic = "test-access-decision"

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	emails := newFakeEmailService()
	consumer := NewConsumerService(pubSub, topic, emails)
	publisher := NewPublisherService(pubSub, topic)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, consumer.Consume(ctx))

	publish := func(status string) {
		payload, err := json.Marshal(dto.PublishAccessDecisionMessage{
			RequestId:  uuid.New(),
			UserEmail:  "joao@example.com",
			CourseName: "Curso de Direção Defensiva",
			Status:     status,
		})
		assert.NoError(t, err)
		assert.NoError(t, publisher.Publish(ctx, payload))
	}

	publish("APPROVED")
	select {
	case to := <-emails.approvals:
		assert.Equal(t, "joao@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("approval email was never sent")
	}

	publish("REJECTED")
	select {
	case to := <-emails.rejections:
		assert.Equal(t, "joao@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("rejection email was never sent")
	}
}

func TestConsumerIgnoresMalformedMessages(t *testing.T) {
	const topic = "test-access-decision-malformed"

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	emails := newFakeEmailService()
	consumer := NewConsumerService(pubSub, topic, emails)
	publisher := NewPublisherService(pubSub, topic)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, consumer.Consume(ctx))

	assert.NoError(t, publisher.Publish(ctx, []byte("not json")))

	// An unparseable message is acked and dropped, never emailed.
	select {
	case <-emails.approvals:
		t.Fatal("malformed message should not produce an email")
	case <-emails.rejections:
		t.Fatal("malformed message should not produce an email")
	case <-time.After(300 * time.Millisecond):
	}
}
