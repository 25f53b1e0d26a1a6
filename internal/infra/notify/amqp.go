package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Routing keys per lifecycle transition; consumers (mail/SMS workers,
// analytics) bind to the topics they care about.
const (
	topicCreated   = "booking.created"
	topicConfirmed = "booking.confirmed"
	topicCanceled  = "booking.canceled"
	topicCompleted = "booking.completed"
)

// AMQPNotifier publishes lifecycle events to a topic exchange. Delivery is
// best-effort: publish failures are logged and never surface to the booking
// flow, which has already committed.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial amqp")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open amqp channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to declare exchange")
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

func (n *AMQPNotifier) Close() {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}

func (n *AMQPNotifier) BookingCreated(ctx context.Context, ev commands.BookingEvent) {
	n.publish(ctx, topicCreated, ev)
}

func (n *AMQPNotifier) BookingConfirmed(ctx context.Context, ev commands.BookingEvent) {
	n.publish(ctx, topicConfirmed, ev)
}

func (n *AMQPNotifier) BookingCanceled(ctx context.Context, ev commands.BookingEvent) {
	n.publish(ctx, topicCanceled, ev)
}

func (n *AMQPNotifier) BookingCompleted(ctx context.Context, ev commands.BookingEvent) {
	n.publish(ctx, topicCompleted, ev)
}

func (n *AMQPNotifier) publish(ctx context.Context, key string, ev commands.BookingEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		slog.Error("failed to marshal booking event", "topic", key, "error", err.Error())
		return
	}

	err = n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		slog.Error("failed to publish booking event",
			"topic", key,
			"booking_id", ev.BookingID.String(),
			"error", err.Error())
	}
}
