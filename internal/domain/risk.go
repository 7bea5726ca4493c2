package domain

import "strings"

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

const (
	HighRiskScore   = 80
	MediumRiskScore = 60
)

func RiskFromScore(score int) RiskLevel {
	switch {
	case score >= HighRiskScore:
		return RiskHigh
	case score >= MediumRiskScore:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ScoreForRisk maps a legacy categorical risk level onto the lowest score that
// classifies to the same level. Unknown levels map to zero.
func ScoreForRisk(level string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "high":
		return HighRiskScore, true
	case "medium":
		return MediumRiskScore, true
	case "low":
		return 0, true
	}
	return 0, false
}

// NormalizeAlertStatus folds the legacy fixture spellings into the canonical
// alert lifecycle. Unknown values are returned lowercased.
func NormalizeAlertStatus(s string) AlertStatus {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "new", "open", "pending":
		return AlertNew
	case "reviewing", "in_review", "in-review", "investigating":
		return AlertReviewing
	case "resolved", "closed", "dismissed":
		return AlertResolved
	default:
		return AlertStatus(v)
	}
}
