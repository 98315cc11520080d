package conversation

import (
	"sync"
	"time"
)

// Watchdog is a single-shot inactivity timer. Arm is cancel-then-restart,
// so re-arming before a fire discards the pending fire: last write wins,
// no queued fires.
type Watchdog struct {
	mu      sync.Mutex
	timeout time.Duration
	onFire  func()
	timer   *time.Timer
}

func NewWatchdog(timeout time.Duration, onFire func()) *Watchdog {
	return &Watchdog{timeout: timeout, onFire: onFire}
}

func (w *Watchdog) Arm() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.timeout, w.onFire)
}

func (w *Watchdog) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watchdog) Armed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer != nil
}
