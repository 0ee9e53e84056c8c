// Package webhook normalizes the two payload shapes the payment webhook
// endpoint receives - a signed Stripe event in production, a bare
// {"data":{"object":<session>}} document from the local simulator - into one
// canonical CompletedCheckout value before any business logic runs.
package webhook

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	stripewebhook "github.com/stripe/stripe-go/v80/webhook"
)

// CustomerDetails is the canonical detail shape extracted from either payload
// variant. Fields missing from the payload are empty strings, never omitted.
type CustomerDetails struct {
	Name        string
	Email       string
	AddressLine string
	City        string
	State       string
	PostalCode  string
	Country     string
}

// CompletedCheckout is a normalized checkout.session.completed event.
type CompletedCheckout struct {
	SessionID string
	Details   CustomerDetails
}

// DecodeSignedEvent verifies the raw body against the signing secret and
// extracts the completed session. Event types other than
// checkout.session.completed return (nil, nil): acknowledged, ignored.
func DecodeSignedEvent(payload []byte, sigHeader, secret string) (*CompletedCheckout, error) {
	// Endpoints deliver events with the API version the account pinned at
	// endpoint creation, which need not match the SDK's pinned version. Only
	// the signature decides authenticity here.
	event, err := stripewebhook.ConstructEventWithOptions(payload, sigHeader, secret, stripewebhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	return normalize(&sess), nil
}

// devPayload is the unsigned local-testing shape: the session object sits
// directly under data.object with no event envelope or signature.
type devPayload struct {
	Data struct {
		Object stripe.CheckoutSession `json:"object"`
	} `json:"data"`
}

// DecodeDevPayload parses the unsigned development payload.
func DecodeDevPayload(body []byte) (*CompletedCheckout, error) {
	var p devPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode dev payload: %w", err)
	}
	if p.Data.Object.ID == "" {
		return nil, errors.New("no checkout session in payload")
	}
	return normalize(&p.Data.Object), nil
}

func normalize(sess *stripe.CheckoutSession) *CompletedCheckout {
	out := &CompletedCheckout{SessionID: sess.ID}
	det := sess.CustomerDetails
	if det == nil {
		return out
	}
	out.Details.Name = det.Name
	out.Details.Email = det.Email
	if addr := det.Address; addr != nil {
		out.Details.AddressLine = addr.Line1
		out.Details.City = addr.City
		out.Details.State = addr.State
		out.Details.PostalCode = addr.PostalCode
		out.Details.Country = addr.Country
	}
	return out
}
