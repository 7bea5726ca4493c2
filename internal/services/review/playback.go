package review

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"trustdesk/internal/domain"
)

const (
	// FootageDuration is the fixed length of the simulated footage in seconds.
	FootageDuration = 90.0
	TickStep        = 0.1
	TickInterval    = 100 * time.Millisecond

	itemWindow   = 5.0 // seconds a receipt item stays highlighted
	markerWindow = 2.0 // seconds either side of a fraud marker
)

// Playback is the mock video clock of one review session. While playing, a
// ticker advances it until it reaches FootageDuration.
type Playback struct {
	interval time.Duration

	mu      sync.Mutex
	current float64
	playing bool
	stop    context.CancelFunc
}

func newPlayback(interval time.Duration) *Playback {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Playback{interval: interval}
}

// Play starts the clock. At the end of the footage it is a no-op.
func (p *Playback) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing || p.current >= FootageDuration {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.playing = true
	p.stop = cancel
	go p.run(ctx)
}

func (p *Playback) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.halt()
}

func (p *Playback) Toggle() {
	p.mu.Lock()
	playing := p.playing
	p.mu.Unlock()
	if playing {
		p.Pause()
	} else {
		p.Play()
	}
}

// Seek jumps to t seconds, clamped to the footage.
func (p *Playback) Seek(t float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = clamp(t)
	return p.current
}

// Skip moves by delta seconds, clamped to the footage.
func (p *Playback) Skip(delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = clamp(p.current + delta)
	return p.current
}

// Tick advances the clock by one step. It reports false once the end of the
// footage is reached, which also stops playback.
func (p *Playback) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.step()
}

// step requires p.mu.
func (p *Playback) step() bool {
	p.current = math.Min(math.Round((p.current+TickStep)*10)/10, FootageDuration)
	if p.current >= FootageDuration {
		p.halt()
		return false
	}
	return true
}

func (p *Playback) State() (current float64, playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.playing
}

// halt requires p.mu.
func (p *Playback) halt() {
	p.playing = false
	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
}

func (p *Playback) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.tickWhile(ctx) {
				return
			}
		}
	}
}

// tickWhile steps the clock unless ctx has been cancelled. The check happens
// under p.mu, which Pause also holds.
func (p *Playback) tickWhile(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	return p.step()
}

func clamp(t float64) float64 {
	return math.Max(0, math.Min(t, FootageDuration))
}

// CurrentItem returns the receipt item being rung up at time t: the first
// item whose offset is at most t and within the highlight window.
func CurrentItem(items []domain.ReceiptItem, t float64) (domain.ReceiptItem, bool) {
	for _, it := range items {
		if t >= it.TimestampOffset && t < it.TimestampOffset+itemWindow {
			return it, true
		}
	}
	return domain.ReceiptItem{}, false
}

// ActiveFraudMarkers returns fraud markers close enough to t to overlay.
func ActiveFraudMarkers(markers []domain.VideoMarker, t float64) []domain.VideoMarker {
	out := []domain.VideoMarker{}
	for _, m := range markers {
		if m.Type == domain.MarkerFraud && math.Abs(m.Time-t) < markerWindow {
			out = append(out, m)
		}
	}
	return out
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds float64) string {
	mins := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", mins, secs)
}
