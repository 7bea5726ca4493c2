// Package fixtures holds the compiled-in seed data. Nothing here is persisted;
// every process start reloads the same set.
package fixtures

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"trustdesk/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type Set struct {
	Transactions []domain.Transaction
	Alerts       []domain.Alert
	Employees    []domain.EmployeeScorecard
	ReceiptItems []domain.ReceiptItem
	VideoMarkers []domain.VideoMarker
	Heatmap      []domain.HeatmapCell
}

type transactionRecord struct {
	ID            string  `yaml:"id"`
	ShopID        string  `yaml:"shop_id"`
	CamID         string  `yaml:"cam_id"`
	PosID         string  `yaml:"pos_id"`
	CashierName   string  `yaml:"cashier_name"`
	MinutesAgo    float64 `yaml:"minutes_ago"`
	Total         string  `yaml:"total"`
	FraudScore    int     `yaml:"fraud_probability_score"`
	Status        string  `yaml:"status"`
	FraudCategory string  `yaml:"fraud_category"`
	Notes         string  `yaml:"notes"`
}

type alertRecord struct {
	ID            string  `yaml:"id"`
	TransactionID string  `yaml:"transaction_id"`
	ShopID        string  `yaml:"shop_id"`
	CashierName   string  `yaml:"cashier_name"`
	FraudScore    int     `yaml:"fraud_probability_score"`
	MinutesAgo    float64 `yaml:"minutes_ago"`
	Status        string  `yaml:"status"`
}

type employeeRecord struct {
	ID                  string  `yaml:"id"`
	Name                string  `yaml:"name"`
	ShopID              string  `yaml:"shop_id"`
	TotalTransactions   int     `yaml:"total_transactions"`
	FlaggedTransactions int     `yaml:"flagged_transactions"`
	FraudRate           float64 `yaml:"fraud_rate"`
	AverageFraudScore   float64 `yaml:"average_fraud_score"`
	MinutesAgo          float64 `yaml:"minutes_ago"`
}

type receiptRecord struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Quantity        int     `yaml:"quantity"`
	Price           string  `yaml:"price"`
	TimestampOffset float64 `yaml:"timestamp_offset"`
	Scanned         bool    `yaml:"scanned"`
}

type document struct {
	Transactions []transactionRecord  `yaml:"transactions"`
	Alerts       []alertRecord        `yaml:"alerts"`
	Employees    []employeeRecord     `yaml:"employees"`
	ReceiptItems []receiptRecord      `yaml:"receipt_items"`
	VideoMarkers []domain.VideoMarker `yaml:"video_markers"`
	Heatmap      []domain.HeatmapCell `yaml:"heatmap"`
}

// Load returns the embedded seed with relative times resolved against now.
func Load(now time.Time) (Set, error) {
	return Parse(seedYAML, now)
}

// Parse decodes a seed document. Exposed for tests and alternate seeds.
func Parse(raw []byte, now time.Time) (Set, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Set{}, fmt.Errorf("decode seed: %w", err)
	}
	ago := func(m float64) time.Time { return now.Add(-time.Duration(m * float64(time.Minute))) }

	var set Set
	seen := make(map[string]bool, len(doc.Transactions))
	for _, r := range doc.Transactions {
		if seen[r.ID] {
			return Set{}, fmt.Errorf("duplicate transaction id %q", r.ID)
		}
		seen[r.ID] = true
		total, err := decimal.NewFromString(r.Total)
		if err != nil {
			return Set{}, fmt.Errorf("transaction %s total: %w", r.ID, err)
		}
		set.Transactions = append(set.Transactions, domain.Transaction{
			ID:               r.ID,
			ShopID:           r.ShopID,
			CamID:            r.CamID,
			PosID:            r.PosID,
			CashierName:      r.CashierName,
			Timestamp:        ago(r.MinutesAgo),
			TransactionTotal: total,
			FraudScore:       r.FraudScore,
			Status:           domain.TransactionStatus(r.Status),
			FraudCategory:    r.FraudCategory,
			Notes:            r.Notes,
		})
	}
	for _, r := range doc.Alerts {
		set.Alerts = append(set.Alerts, domain.Alert{
			ID:            r.ID,
			TransactionID: r.TransactionID,
			ShopID:        r.ShopID,
			CashierName:   r.CashierName,
			FraudScore:    r.FraudScore,
			Timestamp:     ago(r.MinutesAgo),
			Status:        domain.NormalizeAlertStatus(r.Status),
		})
	}
	for _, r := range doc.Employees {
		set.Employees = append(set.Employees, domain.EmployeeScorecard{
			ID:                  r.ID,
			Name:                r.Name,
			ShopID:              r.ShopID,
			TotalTransactions:   r.TotalTransactions,
			FlaggedTransactions: r.FlaggedTransactions,
			FraudRate:           r.FraudRate,
			AverageFraudScore:   r.AverageFraudScore,
			LastIncident:        ago(r.MinutesAgo),
		})
	}
	for _, r := range doc.ReceiptItems {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			return Set{}, fmt.Errorf("receipt item %s price: %w", r.ID, err)
		}
		set.ReceiptItems = append(set.ReceiptItems, domain.ReceiptItem{
			ID:              r.ID,
			Name:            r.Name,
			Quantity:        r.Quantity,
			Price:           price,
			TimestampOffset: r.TimestampOffset,
			Scanned:         r.Scanned,
		})
	}
	set.VideoMarkers = doc.VideoMarkers
	set.Heatmap = doc.Heatmap
	return set, nil
}
