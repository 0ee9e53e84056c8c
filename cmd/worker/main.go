package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/EvangelicalThreads/evangelical-threads/internal/aws"
	"github.com/EvangelicalThreads/evangelical-threads/internal/config"
	"github.com/EvangelicalThreads/evangelical-threads/internal/email"
	"github.com/EvangelicalThreads/evangelical-threads/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	sender := email.NewSender(cfg.ResendAPIKey, cfg.EmailFrom)
	recorder := metrics.NewRecorder(clients.CloudWatch, "EvangelicalThreads/Store")
	p := NewProcessor(sender, recorder)

	// If RUN_LOCAL=true, simulate a single SQS event for local testing.
	if cfg.RunLocal {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"stripe_session_id":"cs_local_1","email":"test@example.com","name":"Test User"}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{
				{Body: testBody},
			},
		}
		if err := p.Handle(context.Background(), event); err != nil {
			log.Fatalf("local handler error: %v", err)
		}
		return
	}

	lambda.Start(p.Handle)
}
