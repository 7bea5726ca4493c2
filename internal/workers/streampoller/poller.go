package streampoller

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"trustdesk/internal/domain"
	"trustdesk/internal/logging"
	"trustdesk/internal/ports"
)

// Snapshot is the latest successfully fetched events per stream.
type Snapshot struct {
	Streams     map[string][]domain.StreamEvent `json:"streams"`
	LastUpdated *time.Time                      `json:"last_updated,omitempty"`
	Loading     bool                            `json:"loading"`
}

// Poller refreshes the stream inspection cache on a fixed interval. It runs
// independently of the push channel.
type Poller struct {
	src     ports.StreamSource
	streams []string
	count   int
	log     *logrus.Logger
	now     func() time.Time

	// round is held for a whole PollOnce so the ticker and manual refreshes
	// never interleave.
	round sync.Mutex

	mu          sync.RWMutex
	cache       map[string][]domain.StreamEvent
	lastUpdated time.Time
	loading     bool
}

func New(src ports.StreamSource, streams []string, count int, log *logrus.Logger) *Poller {
	cache := make(map[string][]domain.StreamEvent, len(streams))
	for _, s := range streams {
		cache[s] = []domain.StreamEvent{}
	}
	return &Poller{src: src, streams: streams, count: count, log: log, now: time.Now, cache: cache}
}

// Run polls once immediately and then every interval until ctx ends.
func (p *Poller) Run(ctx context.Context, interval time.Duration) {
	p.PollOnce(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.PollOnce(ctx)
		}
	}
}

// PollOnce fetches every stream in order. A transport error stops the round
// and leaves the last-updated time as it was; a non-success answer is skipped
// silently. Concurrent calls run one after the other.
func (p *Poller) PollOnce(ctx context.Context) {
	p.round.Lock()
	defer p.round.Unlock()

	p.setLoading(true)
	defer p.setLoading(false)

	for _, s := range p.streams {
		events, ok, err := p.src.Fetch(ctx, s, p.count)
		if err != nil {
			logging.LogError(p.log, "streampoller", "PollOnce", "fetch stream", s, err)
			return
		}
		if !ok {
			continue
		}
		p.mu.Lock()
		p.cache[s] = events
		p.mu.Unlock()
	}
	p.mu.Lock()
	p.lastUpdated = p.now()
	p.mu.Unlock()
}

func (p *Poller) setLoading(v bool) {
	p.mu.Lock()
	p.loading = v
	p.mu.Unlock()
}

func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := Snapshot{Streams: make(map[string][]domain.StreamEvent, len(p.cache)), Loading: p.loading}
	for k, v := range p.cache {
		out.Streams[k] = append([]domain.StreamEvent{}, v...)
	}
	if !p.lastUpdated.IsZero() {
		t := p.lastUpdated
		out.LastUpdated = &t
	}
	return out
}
