package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/classics-showroom/internal/domain/payment"
)

type mockSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (m *mockSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.inputs = append(m.inputs, in)
	if m.err != nil {
		return nil, m.err
	}
	return &sns.PublishOutput{}, nil
}

func TestSNSPublisher_Publish(t *testing.T) {
	client := &mockSNS{}
	p := &SNSPublisher{client: client, topicARN: "arn:aws:sns:eu-west-2:000000000000:orders"}

	userID := int64(3)
	ev := payment.OrderEvent{
		Type:        payment.EventOrderPaid,
		OrderID:     7,
		OrderNumber: uuid.MustParse("6f1c2a8e-4b7d-4c61-9d1a-3f0e5b2c7a90"),
		UserID:      &userID,
		Amount:      decimal.RequireFromString("205.00"),
		Currency:    "GBP",
		IntentID:    "pi_123",
		Timestamp:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), ev))
	require.Len(t, client.inputs, 1)

	in := client.inputs[0]
	assert.Equal(t, "arn:aws:sns:eu-west-2:000000000000:orders", *in.TopicArn)
	assert.Equal(t, payment.EventOrderPaid, *in.MessageAttributes["event_type"].StringValue)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(*in.Message), &decoded))
	assert.Equal(t, "order.paid", decoded["type"])
	assert.Equal(t, float64(7), decoded["order_id"])
	assert.Equal(t, "205", decoded["amount"])
	assert.Equal(t, "GBP", decoded["currency"])
	assert.Equal(t, "pi_123", decoded["payment_intent_id"])
}

func TestSNSPublisher_Error(t *testing.T) {
	p := &SNSPublisher{client: &mockSNS{err: errors.New("throttled")}, topicARN: "arn:topic"}

	err := p.Publish(context.Background(), payment.OrderEvent{Type: payment.EventOrderPaymentFailed})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sns publish to arn:topic")
}

func TestNop(t *testing.T) {
	require.NoError(t, Nop{}.Publish(context.Background(), payment.OrderEvent{}))
}
