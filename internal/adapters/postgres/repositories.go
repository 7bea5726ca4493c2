package postgres

import (
	"context"

	"trustdesk/internal/domain"
)

// DecisionJournal

func (db *DB) Record(ctx context.Context, d domain.Decision) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO decisions (id, transaction_id, status, fraud_category, notes, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO NOTHING
    `, d.ID, d.TransactionID, string(d.Status), d.FraudCategory, d.Notes, d.SubmittedAt)
	return err
}

func (db *DB) Recent(ctx context.Context, limit int) ([]domain.Decision, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx, `
        SELECT id::text, transaction_id, status, fraud_category, notes, submitted_at
        FROM decisions
        ORDER BY submitted_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Decision{}
	for rows.Next() {
		var d domain.Decision
		var status string
		if err := rows.Scan(&d.ID, &d.TransactionID, &status, &d.FraudCategory, &d.Notes, &d.SubmittedAt); err != nil {
			return nil, err
		}
		d.Status = domain.TransactionStatus(status)
		out = append(out, d)
	}
	return out, rows.Err()
}
