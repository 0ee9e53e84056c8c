package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EvangelicalThreads/evangelical-threads/internal/aws"
	"github.com/EvangelicalThreads/evangelical-threads/internal/metrics"
	"github.com/EvangelicalThreads/evangelical-threads/internal/orders"
	"github.com/EvangelicalThreads/evangelical-threads/internal/webhook"
)

func registerWebhookRoute(r *gin.Engine, cfg HandlerConfig, ordersStore *orders.Store, recorder *metrics.Recorder) {
	publisher := aws.NewPublisher(cfg.SQSClient, cfg.QueueURL)

	r.POST("/payment-webhook", func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := c.GetRawData()
		if err != nil {
			log.Printf("webhook: read body: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook handler failed"})
			return
		}

		var completed *webhook.CompletedCheckout
		if cfg.DevMode {
			completed, err = webhook.DecodeDevPayload(body)
		} else {
			completed, err = webhook.DecodeSignedEvent(body, c.GetHeader("stripe-signature"), cfg.WebhookSecret)
		}
		if err != nil {
			// Covers signature mismatch and malformed payloads alike; Stripe
			// retries on non-2xx, we add no retry logic of our own.
			log.Printf("webhook: %v", err)
			recorder.Count(ctx, "WebhookFailed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook handler failed"})
			return
		}
		if completed == nil {
			// A verified event of some other type: acknowledge, ignore.
			recorder.Count(ctx, "WebhookIgnored")
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		det := completed.Details
		matched, err := ordersStore.ApplyCheckoutCompleted(ctx, completed.SessionID, orders.CustomerDetails{
			Name:        det.Name,
			AddressLine: det.AddressLine,
			City:        det.City,
			State:       det.State,
			PostalCode:  det.PostalCode,
			Country:     det.Country,
		})
		if err != nil {
			log.Printf("webhook: apply completed session %s: %v", completed.SessionID, err)
			recorder.Count(ctx, "WebhookFailed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook handler failed"})
			return
		}

		if matched {
			log.Printf("order updated for session %s", completed.SessionID)
			publishOrderPaid(ctx, publisher, completed)
			recorder.Count(ctx, "OrderPaid")
		} else {
			// Webhook raced ahead of (or outlived) the order row; zero rows
			// affected is success, Stripe must not redeliver.
			log.Printf("no order for session %s, nothing to update", completed.SessionID)
		}

		recorder.Count(ctx, "WebhookProcessed")
		c.JSON(http.StatusOK, gin.H{"received": true})
	})
}

// publishOrderPaid hands the paid order to the confirmation worker. Fan-out is
// best-effort: the order is already paid, so a queue hiccup must not turn the
// webhook response into a retry.
func publishOrderPaid(ctx context.Context, publisher *aws.Publisher, completed *webhook.CompletedCheckout) {
	if publisher.SQS == nil || publisher.QueueURL == "" {
		return
	}
	payload, _ := json.Marshal(map[string]string{
		"stripe_session_id": completed.SessionID,
		"email":             completed.Details.Email,
		"name":              completed.Details.Name,
	})
	attrs := map[string]string{"stripe_session_id": completed.SessionID}
	if err := publisher.SendOrderEvent(ctx, string(payload), attrs); err != nil {
		log.Printf("webhook: publish paid order event for session %s: %v", completed.SessionID, err)
	}
}
