package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// FixedTimeProvider is a manually advanced clock for tests and simulations
type FixedTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

var _ core.TimeProvider = (*FixedTimeProvider)(nil)

// NewFixedTimeProvider creates a clock stopped at now
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: now}
}

// Now returns the stopped time
func (p *FixedTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Advance moves the clock forward by d
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

// Since returns the stopped time minus t
func (p *FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.Now().Sub(t)
}

// Until returns t minus the stopped time
func (p *FixedTimeProvider) Until(t time.Time) time.Duration {
	return t.Sub(p.Now())
}

// Sleep advances the clock instead of blocking
func (p *FixedTimeProvider) Sleep(d time.Duration) {
	p.Advance(d)
}

// WithTimeout uses a real timer; tests only rely on cancellation
func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
