package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier delivers the new-lead alert; satisfied by mail.EmailSender.
type Notifier interface {
	SendLeadAlert(payload LeadCreatedPayload) error
}

// Worker consumes lead.created events and fans them out to the sales inbox.
type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{Channel: ch, Notifier: notifier}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	log.Printf("worker waiting on queue %q", queueName)

	for d := range msgs {
		var payload LeadCreatedPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("worker: malformed message, sending to DLQ: %s", err)
			d.Nack(false, false)
			continue
		}

		if err := w.Notifier.SendLeadAlert(payload); err != nil {
			log.Printf("worker: notification for lead %s failed: %s", payload.ID, err)
			d.Nack(false, false)
			continue
		}

		log.Printf("worker: notified sales about lead %s <%s>", payload.ID, payload.Email)
		d.Ack(false)
	}
}
