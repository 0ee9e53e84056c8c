package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"
)

const testSecret = "whsec_test_secret"

// signPayload builds a stripe-signature header the way Stripe does:
// v1 = HMAC-SHA256(secret, "<timestamp>.<payload>").
func signPayload(t *testing.T, payload []byte, secret string, ts time.Time) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func completedEventJSON(sessionJSON string) []byte {
	return []byte(fmt.Sprintf(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":%s}}`, sessionJSON))
}

const sessionJSON = `{
	"id": "cs_test_123",
	"object": "checkout.session",
	"customer_details": {
		"name": "Test User",
		"email": "test@example.com",
		"address": {
			"line1": "123 Test St",
			"city": "Testville",
			"state": "CA",
			"postal_code": "90001",
			"country": "US"
		}
	}
}`

func TestDecodeSignedEvent_Completed(t *testing.T) {
	payload := completedEventJSON(sessionJSON)
	header := signPayload(t, payload, testSecret, time.Now())

	got, err := DecodeSignedEvent(payload, header, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a completed checkout")
	}
	if got.SessionID != "cs_test_123" {
		t.Fatalf("session id mismatch: %q", got.SessionID)
	}
	want := CustomerDetails{
		Name:        "Test User",
		Email:       "test@example.com",
		AddressLine: "123 Test St",
		City:        "Testville",
		State:       "CA",
		PostalCode:  "90001",
		Country:     "US",
	}
	if got.Details != want {
		t.Fatalf("details mismatch:\ngot  %+v\nwant %+v", got.Details, want)
	}
}

func TestDecodeSignedEvent_EndpointPinnedAPIVersion(t *testing.T) {
	// Endpoints pinned to an older account API version still deliver validly
	// signed events; the version field must not fail verification.
	payload := []byte(fmt.Sprintf(`{"id":"evt_3","object":"event","api_version":"2023-10-16","type":"checkout.session.completed","data":{"object":%s}}`, sessionJSON))
	header := signPayload(t, payload, testSecret, time.Now())

	got, err := DecodeSignedEvent(payload, header, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.SessionID != "cs_test_123" {
		t.Fatalf("expected completed checkout, got %+v", got)
	}
}

func TestDecodeSignedEvent_BadSignature(t *testing.T) {
	payload := completedEventJSON(sessionJSON)
	header := signPayload(t, payload, "whsec_wrong_secret", time.Now())

	got, err := DecodeSignedEvent(payload, header, testSecret)
	if err == nil {
		t.Fatal("expected signature verification to fail")
	}
	if got != nil {
		t.Fatal("a rejected event must not be processed")
	}
}

func TestDecodeSignedEvent_OtherEventTypeIgnored(t *testing.T) {
	payload := []byte(`{"id":"evt_2","object":"event","type":"payment_intent.created","data":{"object":{"id":"pi_1"}}}`)
	header := signPayload(t, payload, testSecret, time.Now())

	got, err := DecodeSignedEvent(payload, header, testSecret)
	if err != nil {
		t.Fatalf("other event types are accepted, got error: %v", err)
	}
	if got != nil {
		t.Fatalf("other event types must not produce a checkout, got %+v", got)
	}
}

func TestDecodeDevPayload(t *testing.T) {
	body := []byte(fmt.Sprintf(`{"data":{"object":%s}}`, sessionJSON))

	got, err := DecodeDevPayload(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SessionID != "cs_test_123" || got.Details.Name != "Test User" {
		t.Fatalf("unexpected normalization: %+v", got)
	}
}

func TestDecodeDevPayload_MissingFieldsBecomeEmptyStrings(t *testing.T) {
	body := []byte(`{"data":{"object":{"id":"cs_sparse","customer_details":{"name":"Only Name"}}}}`)

	got, err := DecodeDevPayload(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := CustomerDetails{Name: "Only Name"}
	if got.Details != want {
		t.Fatalf("absent fields must normalize to empty strings, got %+v", got.Details)
	}
}

func TestDecodeDevPayload_NoSession(t *testing.T) {
	if _, err := DecodeDevPayload([]byte(`{"data":{}}`)); err == nil {
		t.Fatal("expected error for payload without a session")
	}
	if _, err := DecodeDevPayload([]byte(`not json`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
