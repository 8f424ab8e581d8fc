package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notification events carried over the queue.
const (
	EventLeadCreated   = "lead_created"
	EventLeadConverted = "lead_converted"
	EventFollowUpDue   = "followup_due"
)

type NotificationPayload struct {
	Event    string `json:"event"`
	LeadID   string `json:"lead_id,omitempty"`
	ClientID string `json:"client_id,omitempty"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	Business string `json:"business,omitempty"`

	// How long the lead has been waiting, set on followup_due only.
	WaitingSince string `json:"waiting_since,omitempty"`
}

type QueueProducerInterface interface {
	PublishNotification(ctx context.Context, payload NotificationPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %v", err)
	}

	return nil
}
