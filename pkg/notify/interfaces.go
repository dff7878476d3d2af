package notify

import "context"

// Notifier delivers failure events to a downstream sink (SQS, SNS, HTTP, etc).
type Notifier interface {
	ID() string
	Type() string
	Send(ctx context.Context, evt Event) error
}
