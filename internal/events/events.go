package events

import "context"

// Event types
const (
	EventAccountStatusChanged = "account_status_changed"
	EventOrderStatusChanged   = "order_status_changed"
	EventPaymentMarkedPaid    = "payment_marked_paid"
)

// Stream names
const (
	StreamAdmin = "events:admin"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
