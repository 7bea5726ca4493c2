package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Core domain models. Wire payloads live in internal/feed and are converted
// into these before they reach the collections.

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusGenuine    TransactionStatus = "genuine"
	StatusFraudulent TransactionStatus = "fraudulent"
	StatusSuspicious TransactionStatus = "suspicious"
)

// IsPending reports whether a transaction still awaits review. An empty status
// counts as pending.
func (s TransactionStatus) IsPending() bool {
	return s == "" || s == StatusPending
}

type Transaction struct {
	ID               string            `json:"id" yaml:"id"`
	ShopID           string            `json:"shop_id" yaml:"shop_id"`
	CamID            string            `json:"cam_id" yaml:"cam_id"`
	PosID            string            `json:"pos_id" yaml:"pos_id"`
	CashierName      string            `json:"cashier_name" yaml:"cashier_name"`
	Timestamp        time.Time         `json:"timestamp" yaml:"-"`
	TransactionTotal decimal.Decimal   `json:"transaction_total" yaml:"transaction_total"`
	FraudScore       int               `json:"fraud_probability_score" yaml:"fraud_probability_score"`
	Status           TransactionStatus `json:"status,omitempty" yaml:"status,omitempty"`
	FraudCategory    string            `json:"fraud_category,omitempty" yaml:"fraud_category,omitempty"`
	Notes            string            `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Risk returns the risk classification derived from the fraud score.
func (t Transaction) Risk() RiskLevel { return RiskFromScore(t.FraudScore) }

type AlertStatus string

const (
	AlertNew       AlertStatus = "new"
	AlertReviewing AlertStatus = "reviewing"
	AlertResolved  AlertStatus = "resolved"
)

type Alert struct {
	ID            string      `json:"id" yaml:"id"`
	TransactionID string      `json:"transaction_id" yaml:"transaction_id"`
	ShopID        string      `json:"shop_id" yaml:"shop_id"`
	CashierName   string      `json:"cashier_name" yaml:"cashier_name"`
	FraudScore    int         `json:"fraud_probability_score" yaml:"fraud_probability_score"`
	Timestamp     time.Time   `json:"timestamp" yaml:"-"`
	Status        AlertStatus `json:"status" yaml:"status"`
}

type EmployeeScorecard struct {
	ID                  string    `json:"id" yaml:"id"`
	Name                string    `json:"name" yaml:"name"`
	ShopID              string    `json:"shop_id" yaml:"shop_id"`
	TotalTransactions   int       `json:"total_transactions" yaml:"total_transactions"`
	FlaggedTransactions int       `json:"flagged_transactions" yaml:"flagged_transactions"`
	FraudRate           float64   `json:"fraud_rate" yaml:"fraud_rate"` // trusted as provided
	AverageFraudScore   float64   `json:"average_fraud_score" yaml:"average_fraud_score"`
	LastIncident        time.Time `json:"last_incident" yaml:"-"`
}

type ReceiptItem struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Quantity        int             `json:"quantity" yaml:"quantity"`
	Price           decimal.Decimal `json:"price" yaml:"price"`
	TimestampOffset float64         `json:"timestamp_offset" yaml:"timestamp_offset"`
	Scanned         bool            `json:"scanned" yaml:"scanned"`
}

type MarkerType string

const (
	MarkerNormal MarkerType = "normal"
	MarkerFraud  MarkerType = "fraud"
)

type VideoMarker struct {
	Time  float64    `json:"time" yaml:"time"`
	Label string     `json:"label" yaml:"label"`
	Type  MarkerType `json:"type" yaml:"type"`
}

type HeatmapCell struct {
	CameraID     string `json:"camera_id" yaml:"camera_id"`
	Lane         string `json:"lane" yaml:"lane"`
	X            int    `json:"x" yaml:"x"`
	Y            int    `json:"y" yaml:"y"`
	FlaggedCount int    `json:"flagged_count" yaml:"flagged_count"`
}

// Decision is a reviewer's verdict on a transaction as sent upstream.
type Decision struct {
	ID            string            `json:"id"`
	TransactionID string            `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
	FraudCategory string            `json:"fraud_category,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	SubmittedAt   time.Time         `json:"submitted_at"`
}

// StreamEvent is one entry from the stream inspection API. Data is kept as
// the raw JSON value, whatever its shape.
type StreamEvent struct {
	StreamID string          `json:"stream_id"`
	Data     json.RawMessage `json:"data"`
}
