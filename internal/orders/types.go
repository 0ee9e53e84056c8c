package orders

import "time"

// Order statuses. The only transition in the checkout flow is
// pending -> paid, applied by the payment webhook.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// CustomerDetails are the shipping/customer fields copied from a completed
// checkout session. Absent fields stay empty strings.
type CustomerDetails struct {
	Name        string
	AddressLine string
	City        string
	State       string
	PostalCode  string
	Country     string
}

// Order represents the item stored in the orders DynamoDB table, one per
// checkout attempt. The Stripe session id is the partition key, which makes
// the at-most-one-record-per-session invariant hold by construction.
type Order struct {
	StripeSessionID string    `dynamodbav:"stripe_session_id" json:"stripeSessionId"` // PK, assigned once at creation
	OrderID         string    `dynamodbav:"order_id" json:"orderId"`
	CustomerName    string    `dynamodbav:"customer_name" json:"customerName"`
	AddressLine     string    `dynamodbav:"address_line" json:"addressLine"`
	City            string    `dynamodbav:"city" json:"city"`
	State           string    `dynamodbav:"state" json:"state"`
	PostalCode      string    `dynamodbav:"postal_code" json:"postalCode"`
	Country         string    `dynamodbav:"country" json:"country"`
	Status          string    `dynamodbav:"status" json:"status"` // pending | paid
	CreatedAt       time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}
