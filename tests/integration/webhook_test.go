//go:build integration

package integration

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v80/webhook"
)

// pendingPayment creates an order for userID and begins its payment.
func pendingPayment(t *testing.T, userID int64) (orderResponse, orderRow) {
	t.Helper()
	o := createOrder(t, userID)

	resp := do(t, http.MethodPost, "/api/checkout/orders/"+o.OrderNumber+"/payment", userID, nil)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	stored := storedOrder(t, o.OrderNumber)
	if stored.IntentID == "" {
		t.Fatal("payment intent id not stored")
	}
	return o, stored
}

// postWebhook is deliverWebhook without testing.T, for use from goroutines.
func postWebhook(ctx context.Context, payload []byte) (int, error) {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    webhookSecret,
		Timestamp: time.Now(),
		Scheme:    "v1",
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/webhooks/stripe", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Stripe-Signature", signed.Header)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func TestWebhook_ConcurrentDuplicatesPayOnce(t *testing.T) {
	o, stored := pendingPayment(t, 201)
	event := paymentEvent("payment_intent.succeeded", stored.IntentID, stored.ID, 10500)

	const deliveries = 8
	var (
		wg       sync.WaitGroup
		statuses = make([]int, deliveries)
		errs     = make([]error, deliveries)
	)
	for i := range deliveries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			statuses[i], errs[i] = postWebhook(context.Background(), event)
		}()
	}
	wg.Wait()

	for i := range deliveries {
		if errs[i] != nil {
			t.Fatalf("delivery %d: %v", i, errs[i])
		}
		if statuses[i] != http.StatusOK {
			t.Errorf("delivery %d: got %d, want 200", i, statuses[i])
		}
	}

	paid := storedOrder(t, o.OrderNumber)
	if paid.Status != "paid" {
		t.Fatalf("status: got %q, want paid", paid.Status)
	}
	if paid.PaidAmount == nil || *paid.PaidAmount != "105.00" {
		t.Fatalf("paid_amount: got %v, want 105.00", paid.PaidAmount)
	}
	if paid.PaidAt == nil {
		t.Fatal("paid_at not set")
	}
	if !carSold(t, 1) {
		t.Error("car 1 not marked sold")
	}

	// A late redelivery finds nothing to transition.
	resp := deliverWebhook(t, event, webhookSecret)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	again := storedOrder(t, o.OrderNumber)
	if !again.UpdatedAt.Equal(paid.UpdatedAt) || !again.PaidAt.Equal(*paid.PaidAt) {
		t.Errorf("order rewritten by redelivery: updated_at %s -> %s, paid_at %s -> %s",
			paid.UpdatedAt, again.UpdatedAt, paid.PaidAt, again.PaidAt)
	}
}

func TestWebhook_FailedAfterPaidKeepsPayment(t *testing.T) {
	o, stored := pendingPayment(t, 202)

	resp := deliverWebhook(t, paymentEvent("payment_intent.succeeded", stored.IntentID, stored.ID, 10500), webhookSecret)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	paid := storedOrder(t, o.OrderNumber)

	resp = deliverWebhook(t, paymentEvent("payment_intent.payment_failed", stored.IntentID, stored.ID, 10500), webhookSecret)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	got := storedOrder(t, o.OrderNumber)
	if got.Status != "paid" {
		t.Errorf("status: got %q, want paid", got.Status)
	}
	if got.PaidAmount == nil || *got.PaidAmount != "105.00" {
		t.Errorf("paid_amount: got %v, want 105.00", got.PaidAmount)
	}
	if !got.UpdatedAt.Equal(paid.UpdatedAt) {
		t.Errorf("order rewritten by failure event: updated_at %s -> %s", paid.UpdatedAt, got.UpdatedAt)
	}
}

func TestWebhook_OtherIntentLeavesOrderPending(t *testing.T) {
	o, stored := pendingPayment(t, 203)

	resp := deliverWebhook(t, paymentEvent("payment_intent.succeeded", "pi_superseded", stored.ID, 10500), webhookSecret)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	got := storedOrder(t, o.OrderNumber)
	if got.Status != "pending" || got.PaidAmount != nil || got.PaidAt != nil {
		t.Errorf("order settled by another intent: %+v", got)
	}
	if got.IntentID != stored.IntentID {
		t.Errorf("stored intent: got %q, want %q", got.IntentID, stored.IntentID)
	}
}
