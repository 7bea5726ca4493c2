package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustdesk/internal/domain"
)

func TestLoad_EmbeddedSeed(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	set, err := Load(now)
	require.NoError(t, err)

	require.Len(t, set.Transactions, 8)
	require.Len(t, set.Alerts, 3)
	assert.Len(t, set.Employees, 6)
	assert.Len(t, set.ReceiptItems, 8)
	assert.Len(t, set.VideoMarkers, 9)
	assert.Len(t, set.Heatmap, 10)

	first := set.Transactions[0]
	assert.Equal(t, "TXN-001", first.ID)
	assert.Equal(t, now.Add(-15*time.Minute), first.Timestamp)
	assert.Equal(t, "87.45", first.TransactionTotal.StringFixed(2))
	assert.Equal(t, domain.RiskHigh, first.Risk())

	assert.Equal(t, domain.AlertReviewing, set.Alerts[2].Status)
	assert.Equal(t, "TXN-003", set.Alerts[2].TransactionID)

	assert.False(t, set.ReceiptItems[2].Scanned)
	assert.Equal(t, domain.MarkerFraud, set.VideoMarkers[2].Type)
	assert.Equal(t, 18.0, set.VideoMarkers[2].Time)
}

func TestLoad_AlertsReferenceSeededTransactions(t *testing.T) {
	set, err := Load(time.Now())
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, tx := range set.Transactions {
		ids[tx.ID] = true
	}
	for _, a := range set.Alerts {
		assert.True(t, ids[a.TransactionID], a.ID)
	}
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	raw := []byte(`
transactions:
  - {id: T1, total: "1.00"}
  - {id: T1, total: "2.00"}
`)
	_, err := Parse(raw, time.Now())
	assert.ErrorContains(t, err, "duplicate transaction id")
}

func TestParse_BadDecimal(t *testing.T) {
	_, err := Parse([]byte("transactions:\n  - {id: T1, total: twelve}\n"), time.Now())
	assert.Error(t, err)

	_, err = Parse([]byte("receipt_items:\n  - {id: I1, price: cheap}\n"), time.Now())
	assert.Error(t, err)
}

func TestParse_LegacyAlertStatus(t *testing.T) {
	set, err := Parse([]byte("alerts:\n  - {id: A1, transaction_id: T1, status: NEW}\n  - {id: A2, transaction_id: T1, status: closed}\n"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.AlertNew, set.Alerts[0].Status)
	assert.Equal(t, domain.AlertResolved, set.Alerts[1].Status)
}
