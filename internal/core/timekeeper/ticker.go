package timekeeper

import (
	"sync"
	"time"
)

// TickSource delivers periodic callbacks while armed.
// Arming again replaces the previous callback, so at most one is pending.
type TickSource interface {
	Arm(onTick func())
	Disarm()
}

// IntervalTicker is a TickSource backed by time.Ticker.
type IntervalTicker struct {
	mu       sync.Mutex
	interval time.Duration
	stopCh   chan struct{}
}

// NewIntervalTicker returns a ticker firing every interval (one second when
// interval is not positive).
func NewIntervalTicker(interval time.Duration) *IntervalTicker {
	if interval <= 0 {
		interval = time.Second
	}
	return &IntervalTicker{interval: interval}
}

// Arm starts a new ticking loop after stopping any previous one.
func (ticker *IntervalTicker) Arm(onTick func()) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.disarmLocked()
	stopCh := make(chan struct{})
	ticker.stopCh = stopCh
	go ticker.run(stopCh, onTick)
}

// Disarm stops the ticking loop. It does not wait for the loop to exit,
// so it is safe to call from inside the tick callback.
func (ticker *IntervalTicker) Disarm() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.disarmLocked()
}

func (ticker *IntervalTicker) disarmLocked() {
	if ticker.stopCh != nil {
		close(ticker.stopCh)
		ticker.stopCh = nil
	}
}

func (ticker *IntervalTicker) run(stopCh <-chan struct{}, onTick func()) {
	timeTicker := time.NewTicker(ticker.interval)
	defer timeTicker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timeTicker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			onTick()
		}
	}
}
