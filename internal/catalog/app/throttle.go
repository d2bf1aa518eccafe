package app

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the quiescence window between the last keystroke
// and the search it triggers.
const DefaultDebounceWindow = 500 * time.Millisecond

// Throttler collapses a burst of search-box input events into a single
// search call: each input cancels the previously scheduled one, so only the
// last text within the window fires. The pending timer is owned here and
// never shared.
type Throttler struct {
	window time.Duration
	fire   func(text string)

	mu    sync.Mutex
	timer *time.Timer
}

func NewThrottler(window time.Duration, fire func(text string)) *Throttler {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Throttler{
		window: window,
		fire:   fire,
	}
}

// Input schedules a search for text after the quiescence window, superseding
// any search still pending.
func (t *Throttler) Input(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.window, func() {
		t.fire(text)
	})
}

// Now cancels any pending search and fires for text immediately.
func (t *Throttler) Now(text string) {
	t.Stop()
	t.fire(text)
}

// Stop cancels any pending search.
func (t *Throttler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
