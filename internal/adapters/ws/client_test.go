package ws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustdesk/internal/domain"
	"trustdesk/internal/feed"
	"trustdesk/internal/logging"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

// pushServer writes frames to every client, then blocks until release is
// closed and finishes with a normal close frame.
func pushServer(t *testing.T, frames []string, release <-chan struct{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		select {
		case <-release:
		case <-r.Context().Done():
		}
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
		// drain until the client acknowledges the close
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func seeded() *feed.Reconciler {
	return feed.NewReconciler(feed.Seed{
		Transactions: []domain.Transaction{{ID: "TXN-001", FraudScore: 92}},
		Alerts:       []domain.Alert{{ID: "ALERT-002", TransactionID: "TXN-001", Status: domain.AlertNew}},
	})
}

func TestRun_AppliesFramesAndDisconnectsOnClose(t *testing.T) {
	release := make(chan struct{})
	srv := pushServer(t, []string{
		`{"type":"NEW_TRANSACTION","data":{"id":"TXN-100","timestamp":"2026-01-01T10:00:00","fraud_probability_score":70}}`,
		`garbage`,
		`{"type":"TRANSACTION_UPDATE","data":{"id":"TXN-001","status":"genuine","notes":"ok"}}`,
	}, release)

	rec := seeded()
	c := New(wsURL(srv), rec, logging.Discard())

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	require.Eventually(t, func() bool {
		tx, _ := rec.Transaction("TXN-001")
		return tx.Status == domain.StatusGenuine
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, rec.Connected())

	txns := rec.Transactions()
	require.Len(t, txns, 2)
	assert.Equal(t, "TXN-100", txns[0].ID)
	assert.Equal(t, domain.AlertResolved, rec.Alerts()[0].Status)

	close(release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after close frame")
	}
	assert.False(t, rec.Connected())
	// collections survive the disconnect
	assert.Len(t, rec.Transactions(), 2)
}

func TestRun_DialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := wsURL(srv)
	srv.Close()

	rec := seeded()
	err := New(url, rec, logging.Discard()).Run(context.Background())
	assert.Error(t, err)
	assert.False(t, rec.Connected())
	assert.Len(t, rec.Transactions(), 1)
}

func TestRun_ContextCancelClosesSocket(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	srv := pushServer(t, nil, release)

	rec := seeded()
	c := New(wsURL(srv), rec, logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	require.Eventually(t, rec.Connected, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, rec.Connected())
}

func TestRun_CancelSendsNormalClose(t *testing.T) {
	codes := make(chan int, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				var ce *websocket.CloseError
				if errors.As(err, &ce) {
					codes <- ce.Code
				} else {
					codes <- -1
				}
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	rec := seeded()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(wsURL(srv), rec, logging.Discard()).Run(ctx) }()
	require.Eventually(t, rec.Connected, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case code := <-codes:
		assert.Equal(t, websocket.CloseNormalClosure, code)
	case <-time.After(2 * time.Second):
		t.Fatal("server never saw the close frame")
	}
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestStart_OnlyOneConnection(t *testing.T) {
	release := make(chan struct{})
	srv := pushServer(t, nil, release)

	rec := seeded()
	c := New(wsURL(srv), rec, logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.True(t, c.Start(ctx))
	assert.False(t, c.Start(ctx))
	require.Eventually(t, c.Connected, 2*time.Second, 10*time.Millisecond)

	close(release)
	require.Eventually(t, func() bool { return !c.Connected() }, 2*time.Second, 10*time.Millisecond)
	// once the previous connection is gone a new one may start
	require.Eventually(t, func() bool { return c.Start(ctx) }, 2*time.Second, 10*time.Millisecond)
}
