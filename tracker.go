package anchor

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrNoSource is returned when starting a Tracker without a PointerSource.
	ErrNoSource = errors.New("anchor: tracker has no pointer source")
	// ErrAlreadyStarted is returned when starting a running Tracker.
	ErrAlreadyStarted = errors.New("anchor: tracker already started")
)

// Tracker follows the pointer by subscribing to a PointerSource.
//
// The source callback is the only writer; Pointer returns a consistent
// snapshot of all four coordinates from any goroutine.
type Tracker struct {
	source PointerSource
	logger *zap.Logger

	mu          sync.RWMutex
	pos         Pointer
	unsubscribe func()
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithTrackerLogger sets the logger used for lifecycle messages.
func WithTrackerLogger(l *zap.Logger) TrackerOption {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTracker creates a stopped Tracker reading from src.
func NewTracker(src PointerSource, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		source: src,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.Named("tracker")
	return t
}

// Start subscribes to the source. The tracked position keeps its last value
// across Stop/Start cycles.
func (t *Tracker) Start() error {
	if t.source == nil {
		return ErrNoSource
	}

	t.mu.Lock()
	if t.unsubscribe != nil {
		t.mu.Unlock()
		return ErrAlreadyStarted
	}
	// Placeholder so a concurrent Start fails while Subscribe runs unlocked;
	// sources may deliver synchronously from inside Subscribe.
	t.unsubscribe = func() {}
	t.mu.Unlock()

	unsub := t.source.Subscribe(t.Update)

	t.mu.Lock()
	if t.unsubscribe == nil {
		// Stopped while subscribing.
		t.mu.Unlock()
		unsub()
		return nil
	}
	t.unsubscribe = unsub
	t.mu.Unlock()

	t.logger.Debug("started")
	return nil
}

// Stop unsubscribes from the source. Stopping a stopped Tracker is a no-op.
func (t *Tracker) Stop() {
	t.mu.Lock()
	unsub := t.unsubscribe
	t.unsubscribe = nil
	t.mu.Unlock()

	if unsub == nil {
		return
	}
	unsub()
	t.logger.Debug("stopped")
}

// Running reports whether the Tracker is subscribed.
func (t *Tracker) Running() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.unsubscribe != nil
}

// Update records a pointer-move event.
func (t *Tracker) Update(ev PointerEvent) {
	p := PointerFromEvent(ev)
	t.mu.Lock()
	t.pos = p
	t.mu.Unlock()
}

// Pointer returns the last tracked position.
func (t *Tracker) Pointer() Pointer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pos
}
