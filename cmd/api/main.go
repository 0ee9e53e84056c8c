package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"

	"github.com/EvangelicalThreads/evangelical-threads/internal/aws"
	"github.com/EvangelicalThreads/evangelical-threads/internal/checkout"
	"github.com/EvangelicalThreads/evangelical-threads/internal/config"
	"github.com/EvangelicalThreads/evangelical-threads/internal/handlers"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterStoreRoutes(r, cfg)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	stripe.Key = cfg.StripeSecretKey

	hcfg := handlers.HandlerConfig{
		DynamoDBClient:   clients.DynamoDB,
		SQSClient:        clients.SQS,
		CloudWatchClient: clients.CloudWatch,
		StripeSessions:   checkout.StripeSessions{},
		OrdersTable:      cfg.OrdersTable,
		CartsTable:       cfg.CartsTable,
		QueueURL:         cfg.OrderEventsQueueURL,
		WebhookSecret:    cfg.StripeWebhookSecret,
		DevMode:          cfg.WebhookDevMode,
		AllowedCountries: cfg.AllowedCountries,
		FallbackOrigin:   cfg.FallbackOrigin,
	}

	r := setupRouter(hcfg)

	// if RUN_LOCAL is set, run a local HTTP server for development.
	if cfg.RunLocal {
		addr := ":8080"
		log.Printf("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
