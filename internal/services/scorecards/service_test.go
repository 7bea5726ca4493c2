package scorecards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustdesk/internal/domain"
	"trustdesk/internal/fixtures"
)

func seeded(t *testing.T) *Service {
	t.Helper()
	set, err := fixtures.Load(time.Now())
	require.NoError(t, err)
	return New(set.Employees)
}

func names(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestList_SortedByFraudRate(t *testing.T) {
	rows := seeded(t).List("")
	assert.Equal(t, []string{"EMP-005", "EMP-003", "EMP-001", "EMP-006", "EMP-002", "EMP-004"}, names(rows))
	assert.Equal(t, TierHigh, rows[0].Tier)
	assert.Equal(t, TierElevated, rows[1].Tier)
	assert.Equal(t, TierNormal, rows[5].Tier)
}

func TestList_Search(t *testing.T) {
	s := seeded(t)
	assert.Equal(t, []string{"EMP-001", "EMP-002", "EMP-004"}, names(s.List("shop-01")))
	assert.Equal(t, []string{"EMP-003"}, names(s.List("EMILY")))
	assert.Empty(t, s.List("nobody"))
}

func TestList_StableForEqualRates(t *testing.T) {
	s := New([]domain.EmployeeScorecard{
		{ID: "A", FraudRate: 3}, {ID: "B", FraudRate: 5}, {ID: "C", FraudRate: 3},
	})
	assert.Equal(t, []string{"B", "A", "C"}, names(s.List("")))
}

func TestSummary(t *testing.T) {
	sum := seeded(t).Summary()
	assert.Equal(t, 6, sum.Employees)
	assert.Equal(t, 1, sum.HighRiskCount)
	assert.InDelta(t, 6.0467, sum.AvgFraudRate, 1e-3)

	assert.Equal(t, Summary{}, New(nil).Summary())
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierNormal, TierFor(4.99))
	assert.Equal(t, TierElevated, TierFor(5))
	assert.Equal(t, TierHigh, TierFor(10))
}
