package main

// OrderPaidMessage is the SQS payload the webhook handler publishes when an
// order transitions to paid.
type OrderPaidMessage struct {
	StripeSessionID string `json:"stripe_session_id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
}
