package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/gen/oas"
	"github.com/xenking/classics-showroom/internal/domain/payment"
)

// StripeWebhook verifies and reconciles a provider callback.
//
// Unverifiable payloads get 400. Verified events get 200 whatever the
// reconciliation outcome, except infrastructure failures, which get 500 so
// the provider redelivers.
func (h *Handler) StripeWebhook(ctx context.Context, req oas.StripeWebhookReq, params oas.StripeWebhookParams) (oas.StripeWebhookRes, error) {
	lg := zctx.From(ctx)

	payload, err := io.ReadAll(io.LimitReader(req.Data, h.cfg.MaxWebhookBytes+1))
	if err != nil {
		return &oas.StripeWebhookBadRequest{Code: http.StatusBadRequest, Message: "unreadable payload"}, nil
	}
	if int64(len(payload)) > h.cfg.MaxWebhookBytes {
		return &oas.StripeWebhookRequestEntityTooLarge{Code: http.StatusRequestEntityTooLarge, Message: "payload too large"}, nil
	}

	ev, err := h.verifier.VerifyEvent(payload, params.StripeSignature.Or(""))
	if err != nil {
		lg.Warn("Rejected webhook", zap.Error(err))
		h.webhookEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "rejected")))
		msg := "malformed event"
		if errors.Is(err, payment.ErrSignature) {
			msg = "invalid signature"
		}
		return &oas.StripeWebhookBadRequest{Code: http.StatusBadRequest, Message: msg}, nil
	}

	outcome, err := h.reconciler.Handle(ctx, ev)
	if err != nil {
		lg.Error("Webhook reconciliation failed",
			zap.String("event_id", ev.ID),
			zap.String("event_type", ev.Type),
			zap.Error(err),
		)
		h.webhookEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
		return &oas.StripeWebhookInternalServerError{Code: http.StatusInternalServerError, Message: "reconciliation failed"}, nil
	}
	h.webhookEvents.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", string(outcome)),
		attribute.String("kind", ev.Kind.String()),
	))

	return &oas.StripeWebhookOK{}, nil
}

// RawWebhookBody declares provider callbacks as opaque bytes. The provider
// sends JSON, but the signature covers the exact payload, so it must reach
// StripeWebhook undecoded.
func RawWebhookBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Header.Set("Content-Type", "application/octet-stream")
		next.ServeHTTP(w, r)
	})
}
