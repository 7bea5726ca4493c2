package ports

import (
	"context"

	"trustdesk/internal/domain"
)

// DecisionSubmitter forwards a reviewer decision to the upstream fraud service.
type DecisionSubmitter interface {
	Submit(ctx context.Context, d domain.Decision) error
}

// StreamSource reads recent events from one named inspection stream. ok is
// false when the upstream answered with a non-success status.
type StreamSource interface {
	Fetch(ctx context.Context, stream string, count int) (events []domain.StreamEvent, ok bool, err error)
}

// FeedConnector opens the push channel.
type FeedConnector interface {
	Start(ctx context.Context) (started bool)
	Connected() bool
}

// LiveFeed is the read/dismiss surface of the live snapshot.
type LiveFeed interface {
	Transactions() []domain.Transaction
	Transaction(id string) (domain.Transaction, bool)
	Alerts() []domain.Alert
	Dismiss(alertID string) bool
	Decisions() []domain.Decision
	Connected() bool
}
