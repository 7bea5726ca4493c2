package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustdesk/internal/domain"
)

func viewFixture() []domain.Transaction {
	return []domain.Transaction{
		txn("TXN-001", "SHOP-01", "Sarah Johnson", 92, domain.StatusPending),
		txn("TXN-002", "SHOP-02", "Michael Chen", 78, ""),
		txn("TXN-003", "SHOP-01", "Emily Rodriguez", 60, domain.StatusGenuine),
		txn("TXN-004", "SHOP-03", "David Kim", 59, domain.StatusPending),
		txn("TXN-005", "SHOP-02", "Jessica Martinez", 80, domain.StatusFraudulent),
	}
}

func TestFilterTransactions_IsOrderedSubsequence(t *testing.T) {
	txns := viewFixture()
	for _, f := range []Filter{FilterAll, FilterHigh, FilterMedium, FilterPending} {
		for _, q := range []string{"", "shop-0", "an", "zzz"} {
			got := FilterTransactions(txns, DefaultView().WithFilter(f).WithSearch(q))
			require.NotNil(t, got)
			// every element appears in the source, in the same relative order
			j := 0
			for _, g := range got {
				for j < len(txns) && txns[j].ID != g.ID {
					j++
				}
				require.Less(t, j, len(txns), "filter %s search %q", f, q)
				j++
			}
		}
	}
}

func TestFilterTransactions_RiskAndPending(t *testing.T) {
	txns := viewFixture()

	assert.Equal(t, []string{"TXN-001", "TXN-005"}, ids(FilterTransactions(txns, DefaultView().WithFilter(FilterHigh))))
	assert.Equal(t, []string{"TXN-002", "TXN-003"}, ids(FilterTransactions(txns, DefaultView().WithFilter(FilterMedium))))
	assert.Equal(t, []string{"TXN-001", "TXN-002", "TXN-004"}, ids(FilterTransactions(txns, DefaultView().WithFilter(FilterPending))))
	assert.Len(t, FilterTransactions(txns, DefaultView()), len(txns))
}

func TestFilterTransactions_SearchIsCaseInsensitiveOr(t *testing.T) {
	txns := viewFixture()

	assert.Equal(t, []string{"TXN-001", "TXN-003"}, ids(FilterTransactions(txns, DefaultView().WithSearch("shop-01"))))
	assert.Equal(t, []string{"TXN-002"}, ids(FilterTransactions(txns, DefaultView().WithSearch("CHEN"))))
	assert.Equal(t, []string{"TXN-004"}, ids(FilterTransactions(txns, DefaultView().WithSearch("txn-004"))))
	assert.Equal(t, []string{"TXN-005"}, ids(FilterTransactions(txns, DefaultView().WithSearch("shop-02").WithFilter(FilterHigh))))
	assert.Empty(t, FilterTransactions(txns, DefaultView().WithSearch("nobody")))
}

func TestViewStateIsValue(t *testing.T) {
	v := DefaultView()
	w := v.WithSearch("x").WithFilter(FilterPending).WithTab(TabEmployees)
	assert.Equal(t, DefaultView(), v)
	assert.Equal(t, ViewState{Search: "x", Filter: FilterPending, Tab: TabEmployees}, w)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("HIGH")
	require.NoError(t, err)
	assert.Equal(t, FilterHigh, f)
	assert.Equal(t, "High Risk", f.Label())

	f, err = ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)
	assert.Equal(t, "All Transactions", f.Label())

	_, err = ParseFilter("low")
	assert.Error(t, err)
}

func TestActiveAlerts(t *testing.T) {
	alerts := []domain.Alert{
		alert("A1", "T1", domain.AlertNew),
		alert("A2", "T2", domain.AlertReviewing),
		alert("A3", "T3", domain.AlertResolved),
		alert("A4", "T4", domain.AlertNew),
	}
	got := ActiveAlerts(alerts)
	require.Len(t, got, 2)
	assert.Equal(t, "A1", got[0].ID)
	assert.Equal(t, "A4", got[1].ID)
	assert.NotNil(t, ActiveAlerts(nil))
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, Stats{Total: 5, High: 2, Medium: 2, Pending: 3}, ComputeStats(viewFixture()))
	assert.Equal(t, Stats{}, ComputeStats(nil))
}
