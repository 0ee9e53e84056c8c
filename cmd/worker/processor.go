package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"github.com/EvangelicalThreads/evangelical-threads/internal/metrics"
)

// ConfirmationSender is what the processor needs from the email layer.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, to, name string) error
}

// Processor turns paid-order SQS messages into confirmation emails.
type Processor struct {
	sender   ConfirmationSender
	recorder *metrics.Recorder
}

func NewProcessor(sender ConfirmationSender, recorder *metrics.Recorder) *Processor {
	return &Processor{sender: sender, recorder: recorder}
}

// Handle processes one SQS event batch. A returned error makes the runtime
// redeliver the batch, so only genuine send failures bubble up; messages
// without a customer email are logged and skipped.
func (p *Processor) Handle(ctx context.Context, event events.SQSEvent) error {
	log.Printf("received %d SQS messages", len(event.Records))
	for _, r := range event.Records {
		var msg OrderPaidMessage
		if err := json.Unmarshal([]byte(r.Body), &msg); err != nil {
			log.Printf("failed to unmarshal message body: %v, body: %s", err, r.Body)
			return err
		}

		if msg.Email == "" {
			log.Printf("session %s carries no customer email, skipping confirmation", msg.StripeSessionID)
			continue
		}

		if err := p.sender.SendOrderConfirmation(ctx, msg.Email, msg.Name); err != nil {
			log.Printf("confirmation for session %s failed: %v", msg.StripeSessionID, err)
			return err
		}

		p.recorder.Count(ctx, "ConfirmationEmailSent")
		log.Printf("confirmation sent for session %s", msg.StripeSessionID)
	}
	return nil
}
