// Package review runs transaction review sessions: simulated footage playback
// correlated with the receipt, and the reviewer's decision.
package review

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"trustdesk/internal/domain"
	"trustdesk/internal/logging"
	"trustdesk/internal/ports"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrSubmitting = errors.New("decision already being submitted")
)

// TransactionLookup resolves a transaction id against the live snapshot.
type TransactionLookup interface {
	Transaction(id string) (domain.Transaction, bool)
}

// DecisionRecorder keeps submitted decisions beside the live snapshot.
type DecisionRecorder interface {
	RecordDecision(d domain.Decision)
}

type Session struct {
	ID          string
	Transaction domain.Transaction
	OpenedAt    time.Time
	playback    *Playback
	items       []domain.ReceiptItem
	markers     []domain.VideoMarker

	submitting bool // guarded by Service.mu
}

func (s *Session) Playback() *Playback { return s.playback }

type MarkerView struct {
	domain.VideoMarker
	PositionPct float64 `json:"position_pct"`
}

// SessionView is the render-ready state of a session.
type SessionView struct {
	ID           string               `json:"id"`
	Transaction  domain.Transaction   `json:"transaction"`
	Risk         domain.RiskLevel     `json:"risk"`
	CurrentTime  float64              `json:"current_time"`
	Duration     float64              `json:"duration"`
	Playing      bool                 `json:"playing"`
	ProgressPct  float64              `json:"progress_pct"`
	Clock        string               `json:"clock"`
	CurrentItem  *domain.ReceiptItem  `json:"current_item,omitempty"`
	FraudOverlay []domain.VideoMarker `json:"fraud_overlay"`
	Markers      []MarkerView         `json:"markers"`
	ReceiptItems []domain.ReceiptItem `json:"receipt_items"`
}

func (s *Session) View() SessionView {
	t, playing := s.playback.State()
	v := SessionView{
		ID:           s.ID,
		Transaction:  s.Transaction,
		Risk:         s.Transaction.Risk(),
		CurrentTime:  t,
		Duration:     FootageDuration,
		Playing:      playing,
		ProgressPct:  t / FootageDuration * 100,
		Clock:        FormatTime(t) + " / " + FormatTime(FootageDuration),
		FraudOverlay: ActiveFraudMarkers(s.markers, t),
		ReceiptItems: s.items,
	}
	if it, ok := CurrentItem(s.items, t); ok {
		v.CurrentItem = &it
	}
	v.Markers = make([]MarkerView, 0, len(s.markers))
	for _, m := range s.markers {
		v.Markers = append(v.Markers, MarkerView{VideoMarker: m, PositionPct: m.Time / FootageDuration * 100})
	}
	return v
}

// Evidence bundles what a reviewer would export for a case file.
type Evidence struct {
	Transaction    domain.Transaction   `json:"transaction"`
	ReceiptItems   []domain.ReceiptItem `json:"receipt_items"`
	UnscannedItems []domain.ReceiptItem `json:"unscanned_items"`
	FraudMarkers   []domain.VideoMarker `json:"fraud_markers"`
	GeneratedAt    time.Time            `json:"generated_at"`
}

func (s *Session) Evidence(now time.Time) Evidence {
	ev := Evidence{
		Transaction:    s.Transaction,
		ReceiptItems:   s.items,
		UnscannedItems: []domain.ReceiptItem{},
		FraudMarkers:   []domain.VideoMarker{},
		GeneratedAt:    now,
	}
	for _, it := range s.items {
		if !it.Scanned {
			ev.UnscannedItems = append(ev.UnscannedItems, it)
		}
	}
	for _, m := range s.markers {
		if m.Type == domain.MarkerFraud {
			ev.FraudMarkers = append(ev.FraudMarkers, m)
		}
	}
	return ev
}

type Service struct {
	lookup    TransactionLookup
	submitter ports.DecisionSubmitter
	recorder  DecisionRecorder
	journal   ports.DecisionJournal
	items     []domain.ReceiptItem
	markers   []domain.VideoMarker
	log       *logrus.Logger

	TickInterval time.Duration
	Now          func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// New builds the service. journal may be nil.
func New(lookup TransactionLookup, submitter ports.DecisionSubmitter, recorder DecisionRecorder, journal ports.DecisionJournal, items []domain.ReceiptItem, markers []domain.VideoMarker, log *logrus.Logger) *Service {
	return &Service{
		lookup:       lookup,
		submitter:    submitter,
		recorder:     recorder,
		journal:      journal,
		items:        items,
		markers:      markers,
		log:          log,
		TickInterval: TickInterval,
		Now:          time.Now,
		sessions:     make(map[string]*Session),
	}
}

// Open starts a review of the given transaction, paused at the beginning.
func (s *Service) Open(transactionID string) (*Session, error) {
	txn, ok := s.lookup.Transaction(transactionID)
	if !ok {
		return nil, ErrNotFound
	}
	sess := &Session{
		ID:          uuid.NewString(),
		Transaction: txn,
		OpenedAt:    s.Now(),
		playback:    newPlayback(s.TickInterval),
		items:       s.items,
		markers:     s.markers,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *Service) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Close stops the session clock and forgets the session.
func (s *Service) Close(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		sess.playback.Pause()
	}
	return ok
}

// CloseAll stops every open session.
func (s *Service) CloseAll() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	for _, id := range ids {
		s.Close(id)
	}
}

// claim marks the session as submitting. Only one caller holds the claim.
func (s *Service) claim(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if sess.submitting {
		return nil, ErrSubmitting
	}
	sess.submitting = true
	return sess, nil
}

func (s *Service) release(sess *Session) {
	s.mu.Lock()
	sess.submitting = false
	s.mu.Unlock()
}

// Submit validates the form and sends it upstream once. On success the session
// is closed; the transaction's status is not touched locally. While one
// submission for a session is in flight, others fail with ErrSubmitting.
func (s *Service) Submit(ctx context.Context, sessionID string, form DecisionForm) (domain.Decision, error) {
	sess, err := s.claim(sessionID)
	if err != nil {
		return domain.Decision{}, err
	}
	if err := form.Validate(); err != nil {
		s.release(sess)
		return domain.Decision{}, err
	}
	d := domain.Decision{
		ID:            uuid.NewString(),
		TransactionID: sess.Transaction.ID,
		Status:        domain.TransactionStatus(form.Status),
		FraudCategory: form.FraudCategory,
		Notes:         form.Notes,
		SubmittedAt:   s.Now(),
	}
	if err := s.submitter.Submit(ctx, d); err != nil {
		logging.LogError(s.log, "review", "Submit", "submit decision", d, err)
		s.release(sess)
		return domain.Decision{}, err
	}
	s.Close(sessionID)
	if s.recorder != nil {
		s.recorder.RecordDecision(d)
	}
	if s.journal != nil {
		if err := s.journal.Record(ctx, d); err != nil {
			logging.LogError(s.log, "review", "Submit", "journal decision", d.ID, err)
		}
	}
	s.log.WithFields(logrus.Fields{"transaction_id": d.TransactionID, "decision": d.Status}).Info("decision submitted")
	return d, nil
}
