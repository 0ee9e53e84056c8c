package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// SessionCreator is the one Stripe call the initiator needs.
type SessionCreator interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeSessions calls the real Stripe checkout sessions API. The API key is
// the package-global stripe.Key, set once at startup.
type StripeSessions struct{}

func (StripeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// OrderWriter records the pending order for a created session.
type OrderWriter interface {
	CreatePending(ctx context.Context, orderID, sessionID string) error
}

// Item is one cart line as the initiator sees it.
type Item struct {
	Name     string
	Image    string
	Price    float64
	Quantity int
}

// Service creates Stripe checkout sessions and records the matching pending order.
type Service struct {
	sessions         SessionCreator
	orders           OrderWriter
	allowedCountries []string
	newID            func() string
}

func NewService(sessions SessionCreator, orders OrderWriter, allowedCountries []string) *Service {
	return &Service{
		sessions:         sessions,
		orders:           orders,
		allowedCountries: allowedCountries,
		newID:            uuid.NewString,
	}
}

// Initiate creates the provider session and then the pending order row, in
// that order. A DB row pointing at a dead session is a recoverable leftover;
// a live session with no row could never be finalized by the webhook, so the
// provider call always comes first.
func (s *Service) Initiate(ctx context.Context, origin string, items []Item) (string, error) {
	params := buildSessionParams(origin, items, s.allowedCountries)
	params.Context = ctx

	sess, err := s.sessions.Create(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	if err := s.orders.CreatePending(ctx, s.newID(), sess.ID); err != nil {
		return "", fmt.Errorf("record pending order for session %s: %w", sess.ID, err)
	}

	return sess.URL, nil
}

func buildSessionParams(origin string, items []Item, allowedCountries []string) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		li := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
				UnitAmount: stripe.Int64(MinorUnits(it.Price)),
			},
			Quantity: stripe.Int64(int64(it.Quantity)),
		}
		if it.Image != "" {
			// Stripe needs absolute image URLs.
			li.PriceData.ProductData.Images = stripe.StringSlice([]string{fmt.Sprintf("%s/products/%s", origin, it.Image)})
		}
		lineItems = append(lineItems, li)
	}

	return &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(allowedCountries),
		},
		SuccessURL: stripe.String(origin + "/success"),
		CancelURL:  stripe.String(origin + "/checkout"),
	}
}
