package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	sent []EmailPayload
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, payload EmailPayload) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, payload)
	return nil
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func sampleEmail() BookingEmail {
	start := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	notes := "first visit <b>"
	return BookingEmail{
		CustomerName:  "Anna",
		CustomerEmail: "anna@example.com",
		ProviderName:  "Dr. Bob",
		ProviderEmail: "bob@example.com",
		ServiceName:   "Consultation",
		Price:         decimal.RequireFromString("49.9"),
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		Notes:         &notes,
	}
}

func TestMailer_SendBookingConfirmation(t *testing.T) {
	pub := &fakePublisher{}
	m := NewMailer(pub, "noreply@example.com", "https://app.example.com")

	require.NoError(t, m.SendBookingConfirmation(context.Background(), sampleEmail()))

	require.Len(t, pub.sent, 1)
	sent := pub.sent[0]
	assert.Equal(t, "Booking Confirmation", sent.Subject)
	assert.Equal(t, []string{"anna@example.com"}, sent.To)
	assert.Equal(t, "noreply@example.com", sent.From)
	assert.Contains(t, sent.HTMLCode, "Hi Anna")
	assert.Contains(t, sent.HTMLCode, "Monday, January 15, 2024")
	assert.Contains(t, sent.HTMLCode, "10:00 - 10:30")
	assert.Contains(t, sent.HTMLCode, "$49.90")
	assert.Contains(t, sent.HTMLCode, "first visit &lt;b&gt;")
	assert.Contains(t, sent.HTMLCode, "https://app.example.com/bookings")
}

func TestMailer_SendProviderNotification(t *testing.T) {
	pub := &fakePublisher{}
	m := NewMailer(pub, "noreply@example.com", "https://app.example.com")

	require.NoError(t, m.SendProviderNotification(context.Background(), sampleEmail()))

	require.Len(t, pub.sent, 1)
	assert.Equal(t, "New Booking Notification", pub.sent[0].Subject)
	assert.Equal(t, []string{"bob@example.com"}, pub.sent[0].To)
	assert.Contains(t, pub.sent[0].HTMLCode, "Anna (anna@example.com)")
}

func TestMailer_PublishError(t *testing.T) {
	m := NewMailer(&fakePublisher{err: errors.New("broker down")}, "from", "url")

	assert.Error(t, m.SendBookingConfirmation(context.Background(), sampleEmail()))
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{channel: ch, queue: "emails"}

	err := p.Publish(context.Background(), EmailPayload{Subject: "s", To: []string{"a@b.c"}, HTMLCode: "<p>x</p>"})

	require.NoError(t, err)
	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "emails", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "application/json", ch.msg.ContentType)

	var decoded EmailPayload
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, "<p>x</p>", decoded.HTMLCode)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	p := &AMQPPublisher{channel: &fakeChannel{err: amqp.ErrClosed}, queue: "emails"}

	err := p.Publish(context.Background(), EmailPayload{})

	assert.ErrorIs(t, err, ErrPublish)
}
