package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EvangelicalThreads/evangelical-threads/internal/aws"
	"github.com/EvangelicalThreads/evangelical-threads/internal/checkout"
	"github.com/EvangelicalThreads/evangelical-threads/internal/metrics"
	"github.com/EvangelicalThreads/evangelical-threads/internal/orders"
	"github.com/EvangelicalThreads/evangelical-threads/internal/validation"
)

// HandlerConfig groups dependencies for the storefront routes.
type HandlerConfig struct {
	DynamoDBClient   aws.DynamoDBAPI
	SQSClient        aws.SQSAPI
	CloudWatchClient aws.CloudWatchAPI
	StripeSessions   checkout.SessionCreator
	OrdersTable      string
	CartsTable       string
	QueueURL         string
	WebhookSecret    string
	// DevMode accepts unsigned webhook payloads shaped {"data":{"object":...}}.
	DevMode          bool
	AllowedCountries []string
	// FallbackOrigin backs success/cancel URLs when the request has no Origin header.
	FallbackOrigin string
}

// RegisterStoreRoutes registers the cart, checkout, webhook and order-lookup routes.
func RegisterStoreRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	ordersStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	svc := checkout.NewService(cfg.StripeSessions, ordersStore, cfg.AllowedCountries)
	recorder := metrics.NewRecorder(cfg.CloudWatchClient, "EvangelicalThreads/Store")

	registerCartRoutes(r, cfg, v)

	r.POST("/checkout-session", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateCheckoutSessionRequest
		if err := validation.BindAndValidate(c, &req, v, "invalid cart items"); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = cfg.FallbackOrigin
		}

		items := make([]checkout.Item, 0, len(req.CartItems))
		for _, it := range req.CartItems {
			items = append(items, checkout.Item{
				Name:     it.Name,
				Image:    it.Image,
				Price:    it.Price,
				Quantity: it.Quantity,
			})
		}

		url, err := svc.Initiate(ctx, origin, items)
		if err != nil {
			log.Printf("checkout session failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
			return
		}

		recorder.Count(ctx, "CheckoutSessionCreated")
		c.JSON(http.StatusOK, gin.H{"url": url})
	})

	registerWebhookRoute(r, cfg, ordersStore, recorder)

	r.GET("/orders/:sessionID", func(c *gin.Context) {
		ctx := c.Request.Context()

		order, err := ordersStore.GetBySessionID(ctx, c.Param("sessionID"))
		if err != nil {
			log.Printf("order lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order lookup failed"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	})
}
