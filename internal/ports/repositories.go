package ports

import (
	"context"

	"trustdesk/internal/domain"
)

// DecisionJournal is an append-only record of decisions submitted upstream.
type DecisionJournal interface {
	Record(ctx context.Context, d domain.Decision) error
	Recent(ctx context.Context, limit int) ([]domain.Decision, error)
}
