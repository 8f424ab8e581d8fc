package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mcalvora/leadflow/internal/infra/http/middleware"
)

// MailNotifier is what the worker needs from the mail layer.
type MailNotifier interface {
	SendWelcome(to, name, business string) error
	SendIntakeAlert(name, email, business string) error
	SendFollowUpReminder(name, email, waitingSince string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mail    MailNotifier
}

func NewWorker(ch *amqp.Channel, mail MailNotifier) *Worker {
	return &Worker{
		Channel: ch,
		Mail:    mail,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(payload); err != nil {
				log.Printf("❌ [WORKER] notification failed for %s: %s", payload.Email, err)
				middleware.RecordNotificationError("email")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Notification worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(payload NotificationPayload) error {
	switch payload.Event {
	case EventLeadConverted:
		log.Printf("✉️ [WORKER] welcome mail for new client %s", payload.Name)
		return w.Mail.SendWelcome(payload.Email, payload.Name, payload.Business)

	case EventLeadCreated:
		log.Printf("✉️ [WORKER] intake alert for lead %s", payload.Name)
		return w.Mail.SendIntakeAlert(payload.Name, payload.Email, payload.Business)

	case EventFollowUpDue:
		log.Printf("⏰ [WORKER] follow-up reminder for lead %s", payload.Name)
		return w.Mail.SendFollowUpReminder(payload.Name, payload.Email, payload.WaitingSince)

	default:
		log.Printf("⚠️ [WORKER] unknown event %q, dropping", payload.Event)
		// Ack unknown events, there is nothing useful to retry.
		return nil
	}
}
