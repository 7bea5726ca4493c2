package feed

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"trustdesk/internal/domain"
	"trustdesk/internal/logging"
)

// Seed is the initial content of the collections.
type Seed struct {
	Transactions []domain.Transaction
	Alerts       []domain.Alert
}

// Reconciler owns the transactions, alerts and locally submitted decisions.
// Every read and write takes the same lock, so each message is applied as a
// whole before anything else observes the collections.
type Reconciler struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	alerts       []domain.Alert
	decisions    []domain.Decision
	connected    bool

	log       *logrus.Logger
	observers []func(Message)
}

type Option func(*Reconciler)

func WithLogger(l *logrus.Logger) Option { return func(r *Reconciler) { r.log = l } }

// WithObserver registers fn to be called after each applied message, outside
// the lock.
func WithObserver(fn func(Message)) Option {
	return func(r *Reconciler) { r.observers = append(r.observers, fn) }
}

func NewReconciler(seed Seed, opts ...Option) *Reconciler {
	r := &Reconciler{
		transactions: append([]domain.Transaction(nil), seed.Transactions...),
		alerts:       append([]domain.Alert(nil), seed.Alerts...),
		log:          logging.Discard(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Ingest decodes one raw frame and applies it. Unknown message types are
// ignored; malformed frames are logged and dropped without touching state.
func (r *Reconciler) Ingest(raw []byte) error {
	msg, err := Decode(raw)
	if errors.Is(err, ErrUnknownKind) {
		r.log.WithError(err).Debug("ignoring feed message")
		return nil
	}
	if err != nil {
		logging.LogError(r.log, "feed", "Ingest", "decode push message", string(raw), err)
		return err
	}
	r.Apply(msg)
	return nil
}

func (r *Reconciler) Apply(msg Message) {
	r.mu.Lock()
	switch m := msg.(type) {
	case NewTransaction:
		// newest first is a consequence of prepending, never of sorting
		r.transactions = append([]domain.Transaction{m.Transaction}, r.transactions...)
	case NewAlert:
		r.alerts = append([]domain.Alert{m.Alert}, r.alerts...)
	case TransactionUpdate:
		r.applyUpdate(m)
	}
	r.mu.Unlock()

	r.log.WithField("type", msg.Kind()).Debug("applied feed message")
	for _, fn := range r.observers {
		fn(msg)
	}
}

func (r *Reconciler) applyUpdate(u TransactionUpdate) {
	for i := range r.transactions {
		if r.transactions[i].ID == u.ID {
			r.transactions[i].Status = u.Status
			r.transactions[i].Notes = u.Notes
		}
	}
	// an adjudicated transaction cannot keep an open alert
	for i := range r.alerts {
		if r.alerts[i].TransactionID == u.ID {
			r.alerts[i].Status = domain.AlertResolved
		}
	}
}

// Dismiss removes the alert with the given id. The referenced transaction is
// left alone.
func (r *Reconciler) Dismiss(alertID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.alerts {
		if a.ID == alertID {
			r.alerts = append(r.alerts[:i:i], r.alerts[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Reconciler) Transactions() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Transaction{}, r.transactions...)
}

// Transaction looks up a transaction by id. Dangling references simply miss.
func (r *Reconciler) Transaction(id string) (domain.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Transaction{}, false
}

func (r *Reconciler) Alerts() []domain.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Alert{}, r.alerts...)
}

// RecordDecision keeps a submitted decision. It does not change the
// transaction; the authoritative status arrives as a TRANSACTION_UPDATE.
func (r *Reconciler) RecordDecision(d domain.Decision) {
	r.mu.Lock()
	r.decisions = append([]domain.Decision{d}, r.decisions...)
	r.mu.Unlock()
}

func (r *Reconciler) Decisions() []domain.Decision {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Decision{}, r.decisions...)
}

func (r *Reconciler) SetConnected(v bool) {
	r.mu.Lock()
	r.connected = v
	r.mu.Unlock()
}

func (r *Reconciler) Connected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.connected
}
