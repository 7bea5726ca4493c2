package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustdesk/internal/domain"
	"trustdesk/internal/feed"
	"trustdesk/internal/fixtures"
	"trustdesk/internal/logging"
	"trustdesk/internal/ports"
	"trustdesk/internal/services/review"
	"trustdesk/internal/services/scorecards"
	"trustdesk/internal/workers/streampoller"
)

type stubSubmitter struct {
	mu      sync.Mutex
	err     error
	sent    []domain.Decision
	entered chan struct{}
	hold    chan struct{}
}

func (s *stubSubmitter) Submit(_ context.Context, d domain.Decision) error {
	s.mu.Lock()
	s.sent = append(s.sent, d)
	err, entered, hold := s.err, s.entered, s.hold
	s.mu.Unlock()
	if hold != nil {
		entered <- struct{}{}
		<-hold
	}
	return err
}

// holdNext makes submissions wait until the returned release func is called.
func (s *stubSubmitter) holdNext() (entered <-chan struct{}, release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entered = make(chan struct{}, 1)
	s.hold = make(chan struct{})
	return s.entered, func() { close(s.hold) }
}

func (s *stubSubmitter) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *stubSubmitter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type stubConnector struct {
	mu        sync.Mutex
	starts    int
	connected bool
}

func (c *stubConnector) Start(context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return false
	}
	c.starts++
	return true
}

func (c *stubConnector) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *stubConnector) set(connected bool) (starts int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = connected
	return c.starts
}

type stubStreams struct{}

func (stubStreams) Fetch(_ context.Context, stream string, _ int) ([]domain.StreamEvent, bool, error) {
	if stream == "pos_stream" {
		return []domain.StreamEvent{{StreamID: stream + "-1", Data: json.RawMessage(`"heartbeat"`)}}, true, nil
	}
	return []domain.StreamEvent{{StreamID: stream + "-1", Data: json.RawMessage(`{"n":1}`)}}, true, nil
}

type stubJournal struct {
	mu      sync.Mutex
	entries []domain.Decision
}

func (j *stubJournal) Record(_ context.Context, d domain.Decision) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append([]domain.Decision{d}, j.entries...)
	return nil
}

func (j *stubJournal) Recent(_ context.Context, limit int) ([]domain.Decision, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.entries) > limit {
		return j.entries[:limit], nil
	}
	return j.entries, nil
}

type harness struct {
	srv       *httptest.Server
	rec       *feed.Reconciler
	submitter *stubSubmitter
	connector *stubConnector
}

func newHarness(t *testing.T, journal ports.DecisionJournal) *harness {
	t.Helper()
	set, err := fixtures.Load(time.Now())
	require.NoError(t, err)

	log := logging.Discard()
	rec := feed.NewReconciler(feed.Seed{Transactions: set.Transactions, Alerts: set.Alerts})
	sub := &stubSubmitter{}
	conn := &stubConnector{}
	reviews := review.New(rec, sub, rec, journal, set.ReceiptItems, set.VideoMarkers, log)
	t.Cleanup(reviews.CloseAll)

	s := New(context.Background(), Deps{
		Feed:       rec,
		Connector:  conn,
		Reviews:    reviews,
		Scorecards: scorecards.New(set.Employees),
		Heatmap:    set.Heatmap,
		Streams:    streampoller.New(stubStreams{}, []string{"vas_stream", "pos_stream"}, 20, log),
		Journal:    journal,
		Log:        log,
	})
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(srv.Close)
	return &harness{srv: srv, rec: rec, submitter: sub, connector: conn}
}

func (h *harness) do(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, h.srv.URL+path, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		var raw any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		out, _ = raw.(map[string]any)
		if out == nil {
			out = map[string]any{"items": raw}
		}
	}
	return resp, out
}

func TestHealthz(t *testing.T) {
	h := newHarness(t, nil)
	resp, body := h.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestDashboard(t *testing.T) {
	h := newHarness(t, nil)
	resp, body := h.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := body["stats"].(map[string]any)
	assert.Equal(t, 8.0, stats["total"])
	assert.Equal(t, 4.0, stats["high_risk"])
	assert.Equal(t, 3.0, stats["medium_risk"])
	assert.Equal(t, 5.0, stats["pending"])
	assert.Equal(t, 2.0, body["active_alerts"])
	assert.Equal(t, "Disconnected", body["connection"].(map[string]any)["label"])
}

func TestListTransactions(t *testing.T) {
	h := newHarness(t, nil)

	resp, body := h.do(t, http.MethodGet, "/api/transactions?filter=High&search=shop-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "high", body["filter"])
	assert.Equal(t, "High Risk", body["filter_label"])
	assert.Equal(t, 2.0, body["showing"])
	assert.Equal(t, 8.0, body["total"])
	txns := body["transactions"].([]any)
	assert.Equal(t, "TXN-001", txns[0].(map[string]any)["id"])
	assert.Equal(t, "TXN-007", txns[1].(map[string]any)["id"])

	resp, _ = h.do(t, http.MethodGet, "/api/transactions?filter=critical", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTransaction(t *testing.T) {
	h := newHarness(t, nil)
	resp, body := h.do(t, http.MethodGet, "/api/transactions/TXN-004", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Medium", body["risk"])
	assert.Equal(t, "James Williams", body["cashier_name"])

	resp, _ = h.do(t, http.MethodGet, "/api/transactions/TXN-999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAlertsAndDismiss(t *testing.T) {
	h := newHarness(t, nil)

	_, body := h.do(t, http.MethodGet, "/api/alerts", nil)
	assert.Len(t, body["alerts"], 3)
	assert.Equal(t, 2.0, body["new_count"])

	resp, _ := h.do(t, http.MethodDelete, "/api/alerts/ALERT-002", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = h.do(t, http.MethodDelete, "/api/alerts/ALERT-002", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, body = h.do(t, http.MethodGet, "/api/alerts/active", nil)
	active := body["items"].([]any)
	require.Len(t, active, 1)
	assert.Equal(t, "ALERT-001", active[0].(map[string]any)["id"])
	assert.Len(t, h.rec.Transactions(), 8)
}

func TestEmployeesAndHeatmap(t *testing.T) {
	h := newHarness(t, nil)

	_, body := h.do(t, http.MethodGet, "/api/employees?search=shop-02", nil)
	emps := body["employees"].([]any)
	require.Len(t, emps, 2)
	assert.Equal(t, "EMP-003", emps[0].(map[string]any)["id"])
	assert.Equal(t, 6.0, body["summary"].(map[string]any)["employees"])

	_, body = h.do(t, http.MethodGet, "/api/heatmap", nil)
	assert.Len(t, body["items"], 10)
}

func TestFeedConnect(t *testing.T) {
	h := newHarness(t, nil)

	resp, body := h.do(t, http.MethodPost, "/api/feed/connect", nil)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, true, body["started"])
	assert.Equal(t, 1, h.connector.set(true))

	_, body = h.do(t, http.MethodPost, "/api/feed/connect", nil)
	assert.Equal(t, false, body["started"])
	assert.Equal(t, "System Active", body["label"])
	assert.Equal(t, 1, h.connector.set(true))
}

func TestReviewLifecycle(t *testing.T) {
	h := newHarness(t, nil)

	resp, body := h.do(t, http.MethodPost, "/api/reviews", map[string]string{"transaction_id": "TXN-001"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["id"].(string)
	assert.Equal(t, "0:00 / 1:30", body["clock"])

	_, body = h.do(t, http.MethodPost, "/api/reviews/"+id+"/seek?t=18", nil)
	assert.Equal(t, 18.0, body["current_time"])
	assert.Equal(t, "ITEM-003", body["current_item"].(map[string]any)["id"])
	assert.Len(t, body["fraud_overlay"], 1)

	_, body = h.do(t, http.MethodPost, "/api/reviews/"+id+"/skip?s=-30", nil)
	assert.Equal(t, 0.0, body["current_time"])

	resp, _ = h.do(t, http.MethodPost, "/api/reviews/"+id+"/seek", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = h.do(t, http.MethodPost, "/api/reviews/"+id+"/play", nil)
	assert.Equal(t, true, body["playing"])
	_, body = h.do(t, http.MethodPost, "/api/reviews/"+id+"/pause", nil)
	assert.Equal(t, false, body["playing"])

	_, body = h.do(t, http.MethodGet, "/api/reviews/"+id+"/evidence", nil)
	assert.Len(t, body["unscanned_items"], 1)

	resp, _ = h.do(t, http.MethodDelete, "/api/reviews/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = h.do(t, http.MethodGet, "/api/reviews/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOpenReview_Errors(t *testing.T) {
	h := newHarness(t, nil)
	resp, _ := h.do(t, http.MethodPost, "/api/reviews", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = h.do(t, http.MethodPost, "/api/reviews", map[string]string{"transaction_id": "TXN-404"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitDecision(t *testing.T) {
	h := newHarness(t, nil)
	_, body := h.do(t, http.MethodPost, "/api/reviews", map[string]string{"transaction_id": "TXN-003"})
	id := body["id"].(string)

	resp, body := h.do(t, http.MethodPost, "/api/reviews/"+id+"/decision", map[string]string{"status": "fraudulent"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "required_if", body["fields"].(map[string]any)["fraud_category"])
	assert.Zero(t, h.submitter.count())

	h.submitter.fail(errors.New("upstream down"))
	resp, _ = h.do(t, http.MethodPost, "/api/reviews/"+id+"/decision", map[string]string{"status": "genuine"})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	h.submitter.fail(nil)
	resp, body = h.do(t, http.MethodPost, "/api/reviews/"+id+"/decision",
		map[string]string{"status": "fraudulent", "fraud_category": "fake-barcode", "notes": "barcode swapped"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "TXN-003", body["transaction_id"])

	// no optimistic update; the status arrives over the push channel
	tx, _ := h.rec.Transaction("TXN-003")
	assert.Equal(t, domain.StatusPending, tx.Status)

	_, body = h.do(t, http.MethodGet, "/api/decisions", nil)
	assert.Equal(t, "memory", body["source"])
	assert.Len(t, body["decisions"], 1)
}

func TestDecisions_FromJournal(t *testing.T) {
	j := &stubJournal{}
	h := newHarness(t, j)
	_, body := h.do(t, http.MethodPost, "/api/reviews", map[string]string{"transaction_id": "TXN-002"})
	id := body["id"].(string)
	resp, _ := h.do(t, http.MethodPost, "/api/reviews/"+id+"/decision", map[string]string{"status": "suspicious"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = h.do(t, http.MethodGet, "/api/decisions?limit=5", nil)
	assert.Equal(t, "journal", body["source"])
	assert.Len(t, body["decisions"], 1)

	resp, _ = h.do(t, http.MethodGet, "/api/decisions?limit=lots", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStreams(t *testing.T) {
	h := newHarness(t, nil)

	_, body := h.do(t, http.MethodGet, "/api/streams", nil)
	streams := body["streams"].(map[string]any)
	assert.Empty(t, streams["vas_stream"])
	assert.Nil(t, body["last_updated"])

	_, body = h.do(t, http.MethodPost, "/api/streams/refresh", nil)
	streams = body["streams"].(map[string]any)
	require.Len(t, streams["vas_stream"], 1)
	require.Len(t, streams["pos_stream"], 1)
	assert.NotNil(t, body["last_updated"])
	// payloads pass through untouched whatever their JSON type
	vas := streams["vas_stream"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"n": 1.0}, vas["data"])
	pos := streams["pos_stream"].([]any)[0].(map[string]any)
	assert.Equal(t, "heartbeat", pos["data"])
}

func TestSubmitDecision_ConcurrentSubmitConflicts(t *testing.T) {
	h := newHarness(t, nil)
	_, body := h.do(t, http.MethodPost, "/api/reviews", map[string]string{"transaction_id": "TXN-005"})
	id := body["id"].(string)

	entered, release := h.submitter.holdNext()
	first := make(chan int, 1)
	go func() {
		resp, _ := h.do(t, http.MethodPost, "/api/reviews/"+id+"/decision", map[string]string{"status": "genuine"})
		first <- resp.StatusCode
	}()
	<-entered

	resp, body := h.do(t, http.MethodPost, "/api/reviews/"+id+"/decision", map[string]string{"status": "genuine"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	release()
	assert.Equal(t, http.StatusOK, <-first)
	assert.Equal(t, 1, h.submitter.count())
}

func TestParamErrorsAreJSON(t *testing.T) {
	h := newHarness(t, nil)
	_, body := h.do(t, http.MethodPost, "/api/reviews", map[string]string{"transaction_id": "TXN-001"})
	id := body["id"].(string)

	resp, body := h.do(t, http.MethodPost, "/api/reviews/"+id+"/skip?s=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Contains(t, body["error"], "parameter s")
}
