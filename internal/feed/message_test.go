package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustdesk/internal/domain"
)

func TestDecode_NewTransaction(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"NEW_TRANSACTION","data":{
		"id":"TXN-100","shop_id":"SHOP-01","cam_id":"CAM-01-A","pos_id":"POS-01",
		"cashier_name":"Sarah Johnson","timestamp":"2026-05-04T12:30:00.123456",
		"transaction_total":"47.83","fraud_probability_score":79.6,"status":"PENDING"}}`))
	require.NoError(t, err)

	nt, ok := msg.(NewTransaction)
	require.True(t, ok)
	assert.Equal(t, KindNewTransaction, nt.Kind())
	tx := nt.Transaction
	assert.Equal(t, "TXN-100", tx.ID)
	assert.Equal(t, "CAM-01-A", tx.CamID)
	assert.Equal(t, 80, tx.FraudScore)
	assert.Equal(t, domain.RiskHigh, tx.Risk())
	assert.Equal(t, domain.StatusPending, tx.Status)
	assert.Equal(t, "47.83", tx.TransactionTotal.StringFixed(2))
	assert.Equal(t, time.Date(2026, 5, 4, 12, 30, 0, 123456000, time.UTC), tx.Timestamp)
}

func TestDecode_LegacyRiskLevel(t *testing.T) {
	cases := map[string]domain.RiskLevel{
		"High":   domain.RiskHigh,
		"medium": domain.RiskMedium,
		"LOW":    domain.RiskLow,
	}
	for level, want := range cases {
		t.Run(level, func(t *testing.T) {
			msg, err := Decode([]byte(`{"type":"NEW_ALERT","data":{"id":"A","transaction_id":"T","timestamp":"2026-01-01T00:00:00Z","risk_level":"` + level + `"}}`))
			require.NoError(t, err)
			assert.Equal(t, want, domain.RiskFromScore(msg.(NewAlert).Alert.FraudScore))
		})
	}

	_, err := Decode([]byte(`{"type":"NEW_ALERT","data":{"id":"A","timestamp":"2026-01-01T00:00:00Z","risk_level":"Severe"}}`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_AlertStatusNormalised(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"NEW_ALERT","data":{"id":"A","transaction_id":"T","timestamp":"2026-01-01T00:00:00Z","status":"Reviewing"}}`))
	require.NoError(t, err)
	assert.Equal(t, domain.AlertReviewing, msg.(NewAlert).Alert.Status)

	msg, err = Decode([]byte(`{"type":"NEW_ALERT","data":{"id":"B","transaction_id":"T","timestamp":"2026-01-01T00:00:00Z"}}`))
	require.NoError(t, err)
	assert.Equal(t, domain.AlertNew, msg.(NewAlert).Alert.Status)
}

func TestDecode_TransactionUpdate(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"TRANSACTION_UPDATE","data":{"id":"TXN-001","status":"Fraudulent","notes":"confirmed on camera"}}`))
	require.NoError(t, err)
	assert.Equal(t, TransactionUpdate{ID: "TXN-001", Status: domain.StatusFraudulent, Notes: "confirmed on camera"}, msg)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", `nope`, ErrMalformed},
		{"unknown type", `{"type":"PING","data":{}}`, ErrUnknownKind},
		{"missing data", `{"type":"NEW_TRANSACTION"}`, ErrMalformed},
		{"missing id", `{"type":"NEW_TRANSACTION","data":{"timestamp":"2026-01-01T00:00:00Z"}}`, ErrMalformed},
		{"missing timestamp", `{"type":"NEW_ALERT","data":{"id":"A"}}`, ErrMalformed},
		{"score out of range", `{"type":"NEW_ALERT","data":{"id":"A","timestamp":"2026-01-01T00:00:00Z","fraud_probability_score":140}}`, ErrMalformed},
		{"bad total", `{"type":"NEW_TRANSACTION","data":{"id":"T","timestamp":"2026-01-01T00:00:00Z","transaction_total":"lots"}}`, ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Decode([]byte(tc.raw))
			assert.Nil(t, msg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	for _, s := range []string{
		"2026-02-03T04:05:06Z",
		"2026-02-03T05:05:06+01:00",
		"2026-02-03T04:05:06",
		"2026-02-03 04:05:06",
		"2026-02-03T04:05:06.000000",
	} {
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), s)
	}

	_, err := ParseTimestamp("03/02/2026")
	assert.ErrorIs(t, err, ErrMalformed)
}
