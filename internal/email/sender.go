package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// EmailsAPI is the slice of the Resend client the sender needs.
type EmailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender sends transactional order mail through Resend.
type Sender struct {
	emails EmailsAPI
	from   string
}

// NewSender builds a Sender talking to the real Resend API.
func NewSender(apiKey, from string) *Sender {
	client := resend.NewClient(apiKey)
	return &Sender{emails: client.Emails, from: from}
}

// NewSenderWithClient injects the email API, for tests.
func NewSenderWithClient(emails EmailsAPI, from string) *Sender {
	return &Sender{emails: emails, from: from}
}

// SendOrderConfirmation mails the customer that their payment went through.
func (s *Sender) SendOrderConfirmation(ctx context.Context, to, name string) error {
	greeting := name
	if greeting == "" {
		greeting = "friend"
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: "Your order is confirmed ✨",
		Html: fmt.Sprintf(`
      <div style="font-family: sans-serif; line-height: 1.5;">
        <h1>Hey %s,</h1>
        <p>Thanks for your order from Evangelical Threads! ✨</p>
        <p>Your payment went through and we're getting everything ready.</p>
        <p>You are the light of the world. Let your light shine.</p>
        <br/>
        <p style="color: #999;">Reply to this email if anything looks off.</p>
      </div>
    `, greeting),
	}

	if _, err := s.emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}
