// Package bootstrap provides initialization utilities for twinview.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/twinview/internal/logging"
)

// Phase is one named startup step and how long it took.
type Phase struct {
	Name     string
	Duration time.Duration
}

// StartupTimer tracks timing for cold start phases.
type StartupTimer struct {
	start  time.Time
	last   time.Time
	phases []Phase
	mu     sync.Mutex
	now    func() time.Time
}

// NewStartupTimer creates a new timer starting from now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	t := now()
	return &StartupTimer{start: t, last: t, now: now}
}

// Mark records the duration since the last mark (or start) for the given phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.phases = append(t.phases, Phase{Name: phase, Duration: now.Sub(t.last)})
	t.last = now
}

// Phases returns the recorded phases in order.
func (t *StartupTimer) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Phase, len(t.phases))
	copy(out, t.phases)
	return out
}

// Total returns the total elapsed time since timer creation.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now().Sub(t.start)
}

// Log outputs all timing information to the context logger.
func (t *StartupTimer) Log(ctx context.Context) {
	event := logging.FromContext(ctx).Info().Dur("total", t.Total())
	for _, p := range t.Phases() {
		event = event.Dur(p.Name, p.Duration)
	}
	event.Msg("startup timing")
}
