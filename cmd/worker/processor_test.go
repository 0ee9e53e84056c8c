package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendOrderConfirmation(ctx context.Context, to, name string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func sqsEvent(t *testing.T, msgs ...OrderPaidMessage) events.SQSEvent {
	t.Helper()
	var ev events.SQSEvent
	for _, m := range msgs {
		body, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("marshal message: %v", err)
		}
		ev.Records = append(ev.Records, events.SQSMessage{Body: string(body)})
	}
	return ev
}

func TestHandle_SendsConfirmations(t *testing.T) {
	sender := &fakeSender{}
	p := NewProcessor(sender, nil)

	ev := sqsEvent(t,
		OrderPaidMessage{StripeSessionID: "cs_1", Email: "a@example.com", Name: "A"},
		OrderPaidMessage{StripeSessionID: "cs_2", Email: "b@example.com", Name: "B"},
	)
	if err := p.Handle(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 2 || sender.sent[0] != "a@example.com" || sender.sent[1] != "b@example.com" {
		t.Fatalf("unexpected recipients: %v", sender.sent)
	}
}

func TestHandle_SkipsMessagesWithoutEmail(t *testing.T) {
	sender := &fakeSender{}
	p := NewProcessor(sender, nil)

	ev := sqsEvent(t, OrderPaidMessage{StripeSessionID: "cs_1"})
	if err := p.Handle(context.Background(), ev); err != nil {
		t.Fatalf("missing email must be skipped, got error: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no sends, got %v", sender.sent)
	}
}

func TestHandle_BadBodyBubblesUp(t *testing.T) {
	p := NewProcessor(&fakeSender{}, nil)

	ev := events.SQSEvent{Records: []events.SQSMessage{{Body: "not json"}}}
	if err := p.Handle(context.Background(), ev); err == nil {
		t.Fatal("expected error so the runtime redelivers the batch")
	}
}

func TestHandle_SendFailureBubblesUp(t *testing.T) {
	p := NewProcessor(&fakeSender{err: errors.New("resend down")}, nil)

	ev := sqsEvent(t, OrderPaidMessage{StripeSessionID: "cs_1", Email: "a@example.com"})
	if err := p.Handle(context.Background(), ev); err == nil {
		t.Fatal("expected send failure to surface")
	}
}
