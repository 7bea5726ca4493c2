package scorecards

import (
	"sort"
	"strings"

	"trustdesk/internal/domain"
)

type Tier string

const (
	TierHigh     Tier = "high"
	TierElevated Tier = "elevated"
	TierNormal   Tier = "normal"
)

const (
	highRate     = 10.0
	elevatedRate = 5.0
)

func TierFor(rate float64) Tier {
	switch {
	case rate >= highRate:
		return TierHigh
	case rate >= elevatedRate:
		return TierElevated
	default:
		return TierNormal
	}
}

type Row struct {
	domain.EmployeeScorecard
	Tier Tier `json:"tier"`
}

type Summary struct {
	Employees     int     `json:"employees"`
	AvgFraudRate  float64 `json:"avg_fraud_rate"`
	HighRiskCount int     `json:"high_risk_count"`
}

// Service serves the read-only scorecard view. Fraud rates are used exactly as
// provided.
type Service struct {
	employees []domain.EmployeeScorecard
}

func New(employees []domain.EmployeeScorecard) *Service {
	return &Service{employees: employees}
}

// List filters by name or shop id, case-insensitively, and orders by fraud
// rate, highest first.
func (s *Service) List(search string) []Row {
	term := strings.ToLower(search)
	rows := make([]Row, 0, len(s.employees))
	for _, e := range s.employees {
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Name), term) &&
			!strings.Contains(strings.ToLower(e.ShopID), term) {
			continue
		}
		rows = append(rows, Row{EmployeeScorecard: e, Tier: TierFor(e.FraudRate)})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].FraudRate > rows[j].FraudRate })
	return rows
}

// Summary covers every employee regardless of search.
func (s *Service) Summary() Summary {
	out := Summary{Employees: len(s.employees)}
	if len(s.employees) == 0 {
		return out
	}
	var total float64
	for _, e := range s.employees {
		total += e.FraudRate
		if e.FraudRate >= highRate {
			out.HighRiskCount++
		}
	}
	out.AvgFraudRate = total / float64(len(s.employees))
	return out
}
