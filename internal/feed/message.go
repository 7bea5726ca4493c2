// Package feed holds the live snapshot of transactions and alerts and the pure
// view derivations the dashboard reads from it.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"trustdesk/internal/domain"
)

type Kind string

const (
	KindNewTransaction    Kind = "NEW_TRANSACTION"
	KindNewAlert          Kind = "NEW_ALERT"
	KindTransactionUpdate Kind = "TRANSACTION_UPDATE"
)

var (
	ErrMalformed   = errors.New("malformed feed message")
	ErrUnknownKind = errors.New("unknown feed message type")
)

// Message is one decoded push-channel event. The concrete types are
// NewTransaction, NewAlert and TransactionUpdate.
type Message interface {
	Kind() Kind
}

type NewTransaction struct {
	Transaction domain.Transaction
}

type NewAlert struct {
	Alert domain.Alert
}

type TransactionUpdate struct {
	ID     string
	Status domain.TransactionStatus
	Notes  string
}

func (NewTransaction) Kind() Kind    { return KindNewTransaction }
func (NewAlert) Kind() Kind          { return KindNewAlert }
func (TransactionUpdate) Kind() Kind { return KindTransactionUpdate }

type envelope struct {
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data"`
}

type transactionPayload struct {
	ID               string          `json:"id"`
	ShopID           string          `json:"shop_id"`
	CamID            string          `json:"cam_id"`
	PosID            string          `json:"pos_id"`
	CashierName      string          `json:"cashier_name"`
	Timestamp        string          `json:"timestamp"`
	TransactionTotal decimal.Decimal `json:"transaction_total"`
	FraudScore       *float64        `json:"fraud_probability_score"`
	RiskLevel        string          `json:"risk_level"` // legacy schema
	Status           string          `json:"status"`
	FraudCategory    string          `json:"fraud_category"`
	Notes            string          `json:"notes"`
}

type alertPayload struct {
	ID            string   `json:"id"`
	TransactionID string   `json:"transaction_id"`
	ShopID        string   `json:"shop_id"`
	CashierName   string   `json:"cashier_name"`
	FraudScore    *float64 `json:"fraud_probability_score"`
	RiskLevel     string   `json:"risk_level"`
	Timestamp     string   `json:"timestamp"`
	Status        string   `json:"status"`
}

type updatePayload struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// Decode parses a raw push-channel frame. Any failure leaves nothing half
// decoded: the caller gets either a complete Message or an error.
func Decode(raw []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch env.Type {
	case KindNewTransaction:
		var p transactionPayload
		if err := unmarshalData(env.Data, &p); err != nil {
			return nil, err
		}
		t, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		return NewTransaction{Transaction: t}, nil
	case KindNewAlert:
		var p alertPayload
		if err := unmarshalData(env.Data, &p); err != nil {
			return nil, err
		}
		a, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		return NewAlert{Alert: a}, nil
	case KindTransactionUpdate:
		var p updatePayload
		if err := unmarshalData(env.Data, &p); err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w: update without id", ErrMalformed)
		}
		return TransactionUpdate{ID: p.ID, Status: domain.TransactionStatus(strings.ToLower(p.Status)), Notes: p.Notes}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Type)
	}
}

func unmarshalData(data json.RawMessage, dst any) error {
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("%w: missing data", ErrMalformed)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func (p transactionPayload) toDomain() (domain.Transaction, error) {
	if p.ID == "" {
		return domain.Transaction{}, fmt.Errorf("%w: transaction without id", ErrMalformed)
	}
	ts, err := ParseTimestamp(p.Timestamp)
	if err != nil {
		return domain.Transaction{}, err
	}
	score, err := resolveScore(p.FraudScore, p.RiskLevel)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		ID:               p.ID,
		ShopID:           p.ShopID,
		CamID:            p.CamID,
		PosID:            p.PosID,
		CashierName:      p.CashierName,
		Timestamp:        ts,
		TransactionTotal: p.TransactionTotal,
		FraudScore:       score,
		Status:           domain.TransactionStatus(strings.ToLower(p.Status)),
		FraudCategory:    p.FraudCategory,
		Notes:            p.Notes,
	}, nil
}

func (p alertPayload) toDomain() (domain.Alert, error) {
	if p.ID == "" {
		return domain.Alert{}, fmt.Errorf("%w: alert without id", ErrMalformed)
	}
	ts, err := ParseTimestamp(p.Timestamp)
	if err != nil {
		return domain.Alert{}, err
	}
	score, err := resolveScore(p.FraudScore, p.RiskLevel)
	if err != nil {
		return domain.Alert{}, err
	}
	return domain.Alert{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		ShopID:        p.ShopID,
		CashierName:   p.CashierName,
		FraudScore:    score,
		Timestamp:     ts,
		Status:        domain.NormalizeAlertStatus(p.Status),
	}, nil
}

// resolveScore prefers the numeric score and falls back to the legacy
// categorical risk level.
func resolveScore(score *float64, level string) (int, error) {
	if score != nil {
		v := *score
		if v < 0 || v > 100 {
			return 0, fmt.Errorf("%w: fraud score %v out of range", ErrMalformed, v)
		}
		return int(v + 0.5), nil
	}
	if level == "" {
		return 0, nil
	}
	s, ok := domain.ScoreForRisk(level)
	if !ok {
		return 0, fmt.Errorf("%w: unknown risk level %q", ErrMalformed, level)
	}
	return s, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z0700",
}

// ParseTimestamp accepts RFC 3339 and the zoneless ISO forms upstream
// producers emit. Zoneless values are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: missing timestamp", ErrMalformed)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformed, s)
}
