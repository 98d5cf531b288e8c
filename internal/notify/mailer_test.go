package notify

import (
	"context"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/classics-showroom/internal/domain/order"
)

type mockSender struct {
	sent []Message
	err  error
}

func (m *mockSender) Send(_ context.Context, msg Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func paidOrder() *order.Order {
	return &order.Order{
		ID:     7,
		Number: uuid.MustParse("6f1c2a8e-4b7d-4c61-9d1a-3f0e5b2c7a90"),
		Shipping: order.Shipping{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
		},
		Items: []order.LineItem{
			{CarID: 1, CarName: "1961 Jaguar E-Type", Quantity: 2, UnitPrice: decimal.RequireFromString("100")},
		},
		Subtotal:    decimal.RequireFromString("200"),
		DeliveryFee: decimal.RequireFromString("5"),
		GrandTotal:  decimal.RequireFromString("205"),
		Currency:    "GBP",
		Status:      order.StatusPaid,
	}
}

func TestMailer_OrderPaid(t *testing.T) {
	sender := &mockSender{}
	m, err := NewMailer(sender, MailerConfig{From: "orders@modernclassics.test", ContactEmail: "help@modernclassics.test"})
	require.NoError(t, err)

	require.NoError(t, m.OrderPaid(context.Background(), paidOrder()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "orders@modernclassics.test", msg.From)
	assert.Equal(t, "Modern Classics order confirmation 6f1c2a8e-4b7d-4c61-9d1a-3f0e5b2c7a90", msg.Subject)
	assert.Contains(t, msg.Body, "Hello Ada Lovelace")
	assert.Contains(t, msg.Body, "2 x 1961 Jaguar E-Type @ 100.00")
	assert.Contains(t, msg.Body, "Grand total:  205.00 GBP")
	assert.Contains(t, msg.Body, "help@modernclassics.test")
}

func TestMailer_SkipsOrdersWithoutEmail(t *testing.T) {
	sender := &mockSender{}
	m, err := NewMailer(sender, MailerConfig{From: "orders@modernclassics.test"})
	require.NoError(t, err)

	o := paidOrder()
	o.Shipping.Email = ""
	require.NoError(t, m.OrderPaid(context.Background(), o))
	assert.Empty(t, sender.sent)
}

func TestMailer_FallsBackToAccountEmail(t *testing.T) {
	sender := &mockSender{}
	m, err := NewMailer(sender, MailerConfig{From: "orders@modernclassics.test"})
	require.NoError(t, err)

	// Paid before the shipping form was submitted.
	o := paidOrder()
	o.Shipping = order.Shipping{}
	o.AccountEmail = "ada.account@example.com"
	require.NoError(t, m.OrderPaid(context.Background(), o))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ada.account@example.com", sender.sent[0].To)
	assert.True(t, strings.HasPrefix(sender.sent[0].Body, "Hello,\n"))
}

func TestMailer_PrefersShippingEmail(t *testing.T) {
	sender := &mockSender{}
	m, err := NewMailer(sender, MailerConfig{From: "orders@modernclassics.test"})
	require.NoError(t, err)

	o := paidOrder()
	o.AccountEmail = "ada.account@example.com"
	require.NoError(t, m.OrderPaid(context.Background(), o))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ada@example.com", sender.sent[0].To)
}

func TestMailer_SendFailure(t *testing.T) {
	sender := &mockSender{err: errors.New("connection refused")}
	m, err := NewMailer(sender, MailerConfig{From: "orders@modernclassics.test"})
	require.NoError(t, err)

	err = m.OrderPaid(context.Background(), paidOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending confirmation for order 7")
}

func TestMailer_CustomTemplates(t *testing.T) {
	m, err := NewMailer(&mockSender{}, MailerConfig{
		From:            "orders@modernclassics.test",
		SubjectTemplate: "Order\n{{ .Order.ID }}\n",
		BodyTemplate:    "Total {{ money .Order.GrandTotal }} - {{ .ContactEmail }}",
	})
	require.NoError(t, err)

	msg, err := m.Render(paidOrder())
	require.NoError(t, err)
	assert.Equal(t, "Order 7", msg.Subject)
	assert.Equal(t, "Total 205.00 - orders@modernclassics.test", msg.Body)
}

func TestNewMailer_BadTemplate(t *testing.T) {
	_, err := NewMailer(&mockSender{}, MailerConfig{BodyTemplate: "{{ .Order"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "body template"))
}

func TestEncode(t *testing.T) {
	raw := string(encode(Message{From: "a@x.test", To: "b@x.test", Subject: "Hi", Body: "Body"}))
	assert.True(t, strings.HasPrefix(raw, "From: a@x.test\r\nTo: b@x.test\r\nSubject: Hi\r\n"))
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\nBody"))
}
