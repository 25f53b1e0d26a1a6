package notify

import (
	"context"
	"log/slog"

	"workshop-booking/internal/usecase/commands"
)

// LogNotifier is the fallback hook used when no AMQP broker is configured:
// transitions still leave a trace without an external dependency.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingCreated(_ context.Context, ev commands.BookingEvent) {
	n.log(topicCreated, ev)
}

func (n *LogNotifier) BookingConfirmed(_ context.Context, ev commands.BookingEvent) {
	n.log(topicConfirmed, ev)
}

func (n *LogNotifier) BookingCanceled(_ context.Context, ev commands.BookingEvent) {
	n.log(topicCanceled, ev)
}

func (n *LogNotifier) BookingCompleted(_ context.Context, ev commands.BookingEvent) {
	n.log(topicCompleted, ev)
}

func (n *LogNotifier) log(topic string, ev commands.BookingEvent) {
	slog.Info("booking lifecycle event",
		"topic", topic,
		"booking_id", ev.BookingID.String(),
		"slot_id", ev.SlotID.String(),
		"status", ev.Status)
}
