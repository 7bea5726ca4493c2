package feed

import (
	"fmt"
	"strings"

	"trustdesk/internal/domain"
)

type Filter string

const (
	FilterAll     Filter = "all"
	FilterHigh    Filter = "high"
	FilterMedium  Filter = "medium"
	FilterPending Filter = "pending"
)

// ParseFilter accepts the filter names case-insensitively; empty means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterHigh, FilterMedium, FilterPending:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q", s)
	}
}

// Label is the human-readable name of the filter.
func (f Filter) Label() string {
	switch f {
	case FilterHigh:
		return "High Risk"
	case FilterMedium:
		return "Medium Risk"
	case FilterPending:
		return "Pending Review"
	default:
		return "All Transactions"
	}
}

type Tab string

const (
	TabTransactions Tab = "transactions"
	TabEmployees    Tab = "employees"
)

// ViewState is an immutable snapshot of what the operator is looking at.
type ViewState struct {
	Search string
	Filter Filter
	Tab    Tab
}

func DefaultView() ViewState {
	return ViewState{Filter: FilterAll, Tab: TabTransactions}
}

func (v ViewState) WithSearch(s string) ViewState { v.Search = s; return v }
func (v ViewState) WithFilter(f Filter) ViewState { v.Filter = f; return v }
func (v ViewState) WithTab(t Tab) ViewState       { v.Tab = t; return v }

// FilterTransactions returns the subsequence of txns matching the view. The
// search term is matched case-insensitively against id, cashier and shop id.
// Source order is kept; results are never re-sorted.
func FilterTransactions(txns []domain.Transaction, v ViewState) []domain.Transaction {
	term := strings.ToLower(v.Search)
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if !matchesSearch(t, term) {
			continue
		}
		if !matchesFilter(t, v.Filter) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesSearch(t domain.Transaction, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.ID), term) ||
		strings.Contains(strings.ToLower(t.CashierName), term) ||
		strings.Contains(strings.ToLower(t.ShopID), term)
}

func matchesFilter(t domain.Transaction, f Filter) bool {
	switch f {
	case FilterHigh:
		return t.Risk() == domain.RiskHigh
	case FilterMedium:
		return t.Risk() == domain.RiskMedium
	case FilterPending:
		return t.Status.IsPending()
	default:
		return true
	}
}

// ActiveAlerts returns the alerts still in the "new" state, in order.
func ActiveAlerts(alerts []domain.Alert) []domain.Alert {
	out := make([]domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Status == domain.AlertNew {
			out = append(out, a)
		}
	}
	return out
}

// Stats is the dashboard's summary row.
type Stats struct {
	Total   int `json:"total"`
	High    int `json:"high_risk"`
	Medium  int `json:"medium_risk"`
	Pending int `json:"pending"`
}

func ComputeStats(txns []domain.Transaction) Stats {
	s := Stats{Total: len(txns)}
	for _, t := range txns {
		switch t.Risk() {
		case domain.RiskHigh:
			s.High++
		case domain.RiskMedium:
			s.Medium++
		}
		if t.Status.IsPending() {
			s.Pending++
		}
	}
	return s
}
