// Package notify sends order confirmation emails.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/internal/domain/order"
	"github.com/xenking/classics-showroom/internal/domain/payment"
)

var _ payment.Notifier = (*Mailer)(nil)

// Message is a rendered plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

const (
	defaultSubject = `Modern Classics order confirmation {{ .Order.Number }}`

	defaultBody = `Hello{{ with .Order.Shipping.FullName }} {{ . }}{{ end }},

Thank you for your order. Your payment has been received.

Order number: {{ .Order.Number }}
{{- range .Order.Items }}
  {{ .Quantity }} x {{ .CarName }} @ {{ money .UnitPrice }}
{{- end }}
Subtotal:     {{ money .Order.Subtotal }}
Delivery:     {{ money .Order.DeliveryFee }}
Grand total:  {{ money .Order.GrandTotal }} {{ .Order.Currency }}

If you have any questions, contact us at {{ .ContactEmail }}.

Modern Classics
`
)

// MailerConfig controls the sender address and templates. Empty templates
// fall back to the built-in ones.
type MailerConfig struct {
	From            string
	ContactEmail    string
	SubjectTemplate string
	BodyTemplate    string
}

// Mailer renders confirmation emails for paid orders.
type Mailer struct {
	sender  Sender
	from    string
	contact string
	subject *template.Template
	body    *template.Template
}

// NewMailer parses the templates and returns a Mailer.
func NewMailer(sender Sender, cfg MailerConfig) (*Mailer, error) {
	funcs := template.FuncMap{"money": money}

	subjectText := cfg.SubjectTemplate
	if subjectText == "" {
		subjectText = defaultSubject
	}
	bodyText := cfg.BodyTemplate
	if bodyText == "" {
		bodyText = defaultBody
	}

	subject, err := template.New("subject").Funcs(funcs).Parse(subjectText)
	if err != nil {
		return nil, fmt.Errorf("parsing subject template: %w", err)
	}
	body, err := template.New("body").Funcs(funcs).Parse(bodyText)
	if err != nil {
		return nil, fmt.Errorf("parsing body template: %w", err)
	}

	contact := cfg.ContactEmail
	if contact == "" {
		contact = cfg.From
	}
	return &Mailer{sender: sender, from: cfg.From, contact: contact, subject: subject, body: body}, nil
}

type templateData struct {
	Order        *order.Order
	ContactEmail string
}

// OrderPaid sends the confirmation email to the shipping address, falling
// back to the account email. Orders with neither are skipped.
func (m *Mailer) OrderPaid(ctx context.Context, o *order.Order) error {
	if o.RecipientEmail() == "" {
		zctx.From(ctx).Warn("Order has no email, skipping confirmation", zap.Int64("order_id", o.ID))
		return nil
	}

	msg, err := m.Render(o)
	if err != nil {
		return err
	}
	if err := m.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending confirmation for order %d: %w", o.ID, err)
	}
	zctx.From(ctx).Info("Confirmation email sent", zap.Int64("order_id", o.ID))
	return nil
}

// Render produces the confirmation message for o without sending it.
func (m *Mailer) Render(o *order.Order) (Message, error) {
	data := templateData{Order: o, ContactEmail: m.contact}

	var subject, body bytes.Buffer
	if err := m.subject.Execute(&subject, data); err != nil {
		return Message{}, fmt.Errorf("rendering subject: %w", err)
	}
	if err := m.body.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("rendering body: %w", err)
	}

	return Message{
		From: m.from,
		To:   o.RecipientEmail(),
		// Subjects must be a single line.
		Subject: strings.Join(strings.Fields(subject.String()), " "),
		Body:    body.String(),
	}, nil
}

func money(v interface{ StringFixed(int32) string }) string {
	return v.StringFixed(2)
}
